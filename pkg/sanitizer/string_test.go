package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Maria Papadopoulou  ",
			want:  "Maria Papadopoulou",
		},
		{
			name:  "multiple spaces between words",
			input: "Maria    Papadopoulou",
			want:  "Maria Papadopoulou",
		},
		{
			name:  "tabs and newlines",
			input: "Maria\t\nPapadopoulou",
			want:  "Maria Papadopoulou",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " O'Brien-Søren ",
			want:  "O'Brien-Søren",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSeatLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12a", "12A"},
		{" 3C ", "3C"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSeatLabel(tt.input); got != tt.want {
			t.Errorf("NormalizeSeatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
