package logging

import "testing"

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		level  string
		format string
	}{
		{"debug", "console"},
		{"info", "json"},
		{"warn", "json"},
		{"error", "console"},
		{"bogus", "bogus"},
	} {
		log, err := New(tc.level, tc.format)
		if err != nil {
			t.Fatalf("New(%q, %q): %v", tc.level, tc.format, err)
		}
		if log == nil {
			t.Fatalf("New(%q, %q) returned nil logger", tc.level, tc.format)
		}
	}
}
