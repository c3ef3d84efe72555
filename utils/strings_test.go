package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "report", "report"},
		{"spaces become underscores", "Main Office Assessment", "Main_Office_Assessment"},
		{"path separators stripped", "a/b\\c", "a_b_c"},
		{"header breakers stripped", `x:"y"?`, "x__y__"},
		{"empty falls back", "   ", "document"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFilename(tc.input); got != tc.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
