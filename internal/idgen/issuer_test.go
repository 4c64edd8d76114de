package idgen

import (
	"strings"
	"testing"
)

func TestSequentialIsDeterministic(t *testing.T) {
	s := NewSequential("L")
	for i, want := range []string{"L1", "L2", "L3"} {
		if got := s.NextLoanID(); got != want {
			t.Fatalf("id[%d]=%q want=%q", i, got, want)
		}
	}
}

func TestUUIDIssuerPrefixAndUniqueness(t *testing.T) {
	issuer := NewUUIDIssuer()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := issuer.NextLoanID()
		if !strings.HasPrefix(id, "L") {
			t.Fatalf("id=%q want L-prefixed", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
