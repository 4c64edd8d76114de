// Package idgen issues loan identifiers. Production wiring uses UUIDs;
// tests use the deterministic sequential issuer.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/finlabs/retail-banking-core/internal/interfaces"
)

// UUIDIssuer issues "L"-prefixed identifiers derived from random UUIDs.
type UUIDIssuer struct{}

// NewUUIDIssuer returns the default production issuer.
func NewUUIDIssuer() UUIDIssuer { return UUIDIssuer{} }

func (UUIDIssuer) NextLoanID() string {
	return "L" + uuid.NewString()
}

// Sequential issues prefix+counter identifiers, deterministic across a run.
type Sequential struct {
	prefix string
	next   int64
}

// NewSequential returns an issuer producing prefix1, prefix2, ...
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (s *Sequential) NextLoanID() string {
	n := atomic.AddInt64(&s.next, 1)
	return fmt.Sprintf("%s%d", s.prefix, n)
}

var (
	_ interfaces.IDIssuer = UUIDIssuer{}
	_ interfaces.IDIssuer = (*Sequential)(nil)
)
