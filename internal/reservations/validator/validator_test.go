package validator

import (
	"errors"
	"strings"
	"testing"

	"reception/pkg/logger"
	"reception/pkg/model"
)

func newTestValidator() *ReceptionValidator {
	return NewReceptionValidator(logger.Discard())
}

func TestValidateRoom(t *testing.T) {
	tests := []struct {
		name      string
		input     *model.RoomInput
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid double",
			input: &model.RoomInput{Category: "double", NightlyPrice: 80000},
		},
		{
			name:  "free room is allowed",
			input: &model.RoomInput{Category: "simple", NightlyPrice: 0},
		},
		{
			name:      "negative price",
			input:     &model.RoomInput{Category: "suite", NightlyPrice: -1},
			wantField: "NightlyPrice",
			wantMsg:   "NightlyPrice must be at least 0",
		},
		{
			name:      "unknown category",
			input:     &model.RoomInput{Category: "penthouse", NightlyPrice: 10},
			wantField: "Category",
			wantMsg:   "Category must be one of: simple double suite",
		},
		{
			name:      "missing category",
			input:     &model.RoomInput{NightlyPrice: 10},
			wantField: "Category",
			wantMsg:   "Category is required",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRoom(tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			if len(verrs) != 1 {
				t.Fatalf("expected one error, got %v", verrs)
			}
			if verrs[0].Field != tt.wantField {
				t.Errorf("expected field %s, got %s", tt.wantField, verrs[0].Field)
			}
			if verrs[0].Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, verrs[0].Message)
			}
		})
	}
}

func TestValidateClient(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateClient(&model.ClientInput{Name: "Ana Perez"}); err != nil {
		t.Errorf("name alone should be enough, got %v", err)
	}
	if err := v.ValidateClient(&model.ClientInput{Name: "Ana", Email: "not an email", Phone: "call the desk"}); err != nil {
		t.Errorf("email and phone are opaque text, got %v", err)
	}

	err := v.ValidateClient(&model.ClientInput{Email: "ana@example.com"})
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	if !strings.Contains(err.Error(), "Name is required") {
		t.Errorf("unexpected message: %v", err)
	}

	err = v.ValidateClient(&model.ClientInput{Name: strings.Repeat("a", 201)})
	if err == nil || !strings.Contains(err.Error(), "Name must be at most 200 characters") {
		t.Errorf("expected max length error, got %v", err)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Category", Message: "Category is required"},
		{Field: "NightlyPrice", Message: "NightlyPrice must be at least 0"},
	}
	want := "validation failed: 2 error(s): [Category: Category is required; NightlyPrice: NightlyPrice must be at least 0]"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should render empty")
	}
}
