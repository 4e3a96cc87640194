package handler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reception/internal/reservations/registry"
	"reception/internal/reservations/service"
	"reception/internal/reservations/validator"
	"reception/pkg/config"
	apperrors "reception/pkg/errors"
	"reception/pkg/logger"
)

func newTestHandler(t *testing.T) (*CommandHandler, *bytes.Buffer) {
	t.Helper()
	log := logger.Discard()
	cfg := &config.Config{Log: log, PhoneRegion: "CO", Currency: "COP"}
	svc := service.NewReceptionService(registry.New(), validator.NewReceptionValidator(log), cfg)
	var out bytes.Buffer
	return NewCommandHandler(svc, &out, cfg), &out
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestServe_ReceptionScenario(t *testing.T) {
	h, out := newTestHandler(t)

	script := `
# inventory
room add simple 50000
room add doble 80000
room add suite 200000
room add double 90000
client add "Ana Perez" anapeto@gmail.com +573206952458

reserve 1 double 2025-12-20 2025-12-25
cost 1
rooms double 2025-12-20 2025-12-25
reserve 1 double 2025-12-22 2025-12-24
reserve 1 double 2025-12-22 2025-12-24
reserve 1 double 2025-12-25 2025-12-20
cancel 1
cancel 1
rooms double 2025-12-20 2025-12-25
list
`
	require.NoError(t, h.Serve(context.Background(), strings.NewReader(script)))

	want := []string{
		"room 1 registered: Simple at 50000.00 COP/night",
		"room 2 registered: Double at 80000.00 COP/night",
		"room 3 registered: Suite at 200000.00 COP/night",
		"room 4 registered: Double at 90000.00 COP/night",
		"client 1 registered: Ana Perez",
		"reservation 1 confirmed: room 2, 2025-12-20 to 2025-12-25 (5 nights)",
		"reservation 1 costs 400000.00 COP",
		"room 4  Double  90000.00 COP/night",
		"reservation 2 confirmed: room 4, 2025-12-22 to 2025-12-24 (2 nights)",
		"error: no room available for the requested dates",
		"error: no room available for the requested dates",
		"reservation 1 cancelled",
		"reservation 1 was not found, nothing cancelled",
		"room 2  Double  80000.00 COP/night",
		"reservation 2: client 1, room 4, 2025-12-22 to 2025-12-24 (2 nights)",
	}
	if diff := cmp.Diff(want, lines(out.String())); diff != "" {
		t.Errorf("shell output mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		code string
	}{
		{"unknown command", "checkout 1", apperrors.CodeInvalidInput},
		{"missing args", "reserve 1 double", apperrors.CodeInvalidInput},
		{"bad id", "cost abc", apperrors.CodeInvalidInput},
		{"zero id", "show 0", apperrors.CodeInvalidInput},
		{"bad category", "rooms attic", apperrors.CodeInvalidInput},
		{"bad price", "room add simple cheap", apperrors.CodeInvalidInput},
		{"negative price", "room add simple -10", apperrors.CodeValidation},
		{"malformed date", "reserve 1 simple 2025-12-2x 2025-12-30", apperrors.CodeInvalidInput},
		{"unterminated quote", `client add "Ana Perez`, apperrors.CodeInvalidInput},
		{"missing reservation", "cost 7", apperrors.CodeNotFound},
		{"missing room", "room deactivate 9", apperrors.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			err := h.Execute(context.Background(), tt.line)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.code), "expected %s, got %v", tt.code, err)
		})
	}
}

func TestExecute_IgnoresBlankAndComments(t *testing.T) {
	h, out := newTestHandler(t)

	for _, line := range []string{"", "   ", "# room add simple 1", "\t# note"} {
		require.NoError(t, h.Execute(context.Background(), line))
	}
	assert.Empty(t, out.String())
}

func TestExecute_RoomsWithoutDatesIgnoresBookings(t *testing.T) {
	h, out := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.Execute(ctx, "room add suite 200000"))
	require.NoError(t, h.Execute(ctx, "reserve 5 suite 2025-12-20 2025-12-25"))
	out.Reset()

	require.NoError(t, h.Execute(ctx, "rooms suite"))
	assert.Equal(t, "room 1  Suite  200000.00 COP/night\n", out.String())

	out.Reset()
	require.NoError(t, h.Execute(ctx, "rooms suite 2025-12-21 2025-12-22"))
	assert.Equal(t, "no Suite rooms available\n", out.String())
}

func TestExecute_DeactivatedRoom(t *testing.T) {
	h, out := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.Execute(ctx, "room add simple 50000"))
	require.NoError(t, h.Execute(ctx, "reserve 1 simple 2025-12-20 2025-12-25"))
	require.NoError(t, h.Execute(ctx, "room deactivate 1"))
	out.Reset()

	require.NoError(t, h.Execute(ctx, "cost 1"))
	assert.Equal(t, "reservation 1 costs 250000.00 COP\n", out.String())

	err := h.Execute(ctx, "reserve 1 simple 2026-01-01 2026-01-02")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict), "got %v", err)
}

func TestServe_ReportsValidationDetail(t *testing.T) {
	h, out := newTestHandler(t)

	require.NoError(t, h.Serve(context.Background(), strings.NewReader("room add simple -1\n")))
	assert.Equal(t,
		"error: Room validation failed: validation failed: 1 error(s): [NightlyPrice: NightlyPrice must be at least 0]\n",
		out.String(),
	)
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "plain", input: "cost 1", want: []string{"cost", "1"}},
		{name: "extra spaces", input: "  cost \t 1 ", want: []string{"cost", "1"}},
		{name: "quoted words", input: `client add "Ana Perez" a@b.c`, want: []string{"client", "add", "Ana Perez", "a@b.c"}},
		{name: "empty quoted field", input: `client add Ana "" 123`, want: []string{"client", "add", "Ana", "", "123"}},
		{name: "quote inside word", input: `say ab"c d"e`, want: []string{"say", "abc de"}},
		{name: "unterminated", input: `client add "Ana`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitFields(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUnterminatedQuote)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitFields(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
