package sanitizer

import "testing"

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{
			name:   "valid E.164 format",
			input:  "+573206952458",
			region: "CO",
			want:   "+573206952458",
		},
		{
			name:   "national number in default region",
			input:  "320 695 2458",
			region: "CO",
			want:   "+573206952458",
		},
		{
			name:   "with dashes",
			input:  "+57-320-695-2458",
			region: "CO",
			want:   "+573206952458",
		},
		{
			name:   "foreign prefix wins over default region",
			input:  "+1 (212) 555-1234",
			region: "CO",
			want:   "+12125551234",
		},
		{
			name:   "leading and trailing spaces",
			input:  "  +573206952458  ",
			region: "CO",
			want:   "+573206952458",
		},
		{
			name:   "empty string",
			input:  "",
			region: "CO",
			want:   "",
		},
		{
			name:   "not a phone is kept as typed",
			input:  " ask at desk ",
			region: "CO",
			want:   "ask at desk",
		},
		{
			name:   "extension text is kept as typed",
			input:  "ext. 204",
			region: "CO",
			want:   "ext. 204",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizePhone(tt.input, tt.region)
			if got != tt.want {
				t.Errorf("SanitizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}

func TestSanitizePhone_Idempotent(t *testing.T) {
	once := SanitizePhone("320 695 2458", "CO")
	twice := SanitizePhone(once, "CO")
	if once != twice {
		t.Errorf("not idempotent: %q then %q", once, twice)
	}
}
