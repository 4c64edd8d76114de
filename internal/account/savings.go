package account

import (
	"github.com/shopspring/decimal"

	"github.com/finlabs/retail-banking-core/internal/models"
)

// DefaultInterestRate is the savings rate used when the caller supplies a
// zero rate.
var DefaultInterestRate = decimal.NewFromFloat(0.03)

// SavingsAccount is an account that accrues interest on demand. All base
// operations are unchanged; withdrawals carry no fee.
type SavingsAccount struct {
	*Account
	rate decimal.Decimal
}

// NewSavings creates a savings account. A zero rate falls back to
// DefaultInterestRate.
func NewSavings(number string, opening, rate decimal.Decimal, opts ...Option) (*SavingsAccount, error) {
	if rate.IsZero() {
		rate = DefaultInterestRate
	}
	base, err := newAccount(number, KindSavings, opening, NoFee{}, opts...)
	if err != nil {
		return nil, err
	}
	return &SavingsAccount{Account: base, rate: rate}, nil
}

// InterestRate returns the fractional rate applied per ApplyInterest call.
func (s *SavingsAccount) InterestRate() decimal.Decimal { return s.rate }

// ApplyInterest credits balance * rate and records an interest entry.
// It is unconditional: interest accrues even while the account is frozen,
// and repeated calls compound. A zero balance yields a zero entry.
func (s *SavingsAccount) ApplyInterest() models.LedgerEntry {
	interest := s.balance.Mul(s.rate)
	s.balance = s.balance.Add(interest)
	return s.append(models.EntryInterest, "interest", interest, decimal.Zero, "")
}
