package service

import (
	"testing"
	"time"
)

func TestOccurrenceName(t *testing.T) {
	feb5 := time.Date(2024, time.February, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"plain name", "Pay rent", "Pay rent (Feb 5)"},
		{"replaces previous date suffix", "Pay rent (Jan 5)", "Pay rent (Feb 5)"},
		{"strips only the trailing suffix", "Review (draft) notes (Jan 5)", "Review (draft) notes (Feb 5)"},
		{"keeps interior parentheses", "Standup (weekly sync)", "Standup (Feb 5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occurrenceName(tt.original, feb5); got != tt.want {
				t.Errorf("occurrenceName(%q) = %q, want %q", tt.original, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	if got := baseName("Pay rent (Jan 5)"); got != "Pay rent" {
		t.Errorf("baseName = %q, want %q", got, "Pay rent")
	}
	if got := baseName("Pay rent"); got != "Pay rent" {
		t.Errorf("baseName = %q, want %q", got, "Pay rent")
	}
}
