// Package loan models a flat-amortization loan tracked independently of any
// account. There is no interest accrual, overpayment forgiveness or penalty;
// the balance only ever moves down, towards zero.
package loan

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidRepayment rejects repayments that are non-positive, exceed the
// remaining balance, or arrive after the loan is already cleared. The loan
// is left untouched.
var ErrInvalidRepayment = errors.New("invalid repayment amount or loan already cleared")

// Loan tracks an amortizing balance. CustomerID is a lookup key for display
// purposes, not a live reference; the loan does not own the customer.
type Loan struct {
	id           string
	customerID   string
	principal    decimal.Decimal
	periodMonths int
	remaining    decimal.Decimal
}

// New creates a loan with the remaining balance set to the principal.
// The identifier comes from an external issuer; the loan treats it as opaque.
func New(id, customerID string, principal decimal.Decimal, periodMonths int) *Loan {
	return &Loan{
		id:           id,
		customerID:   customerID,
		principal:    principal,
		periodMonths: periodMonths,
		remaining:    principal,
	}
}

// ID returns the externally issued loan identifier.
func (l *Loan) ID() string { return l.id }

// CustomerID returns the borrowing customer's identifier.
func (l *Loan) CustomerID() string { return l.customerID }

// Principal returns the original loan amount.
func (l *Loan) Principal() decimal.Decimal { return l.principal }

// PeriodMonths returns the repayment period.
func (l *Loan) PeriodMonths() int { return l.periodMonths }

// Remaining returns the outstanding balance.
func (l *Loan) Remaining() decimal.Decimal { return l.remaining }

// MonthlyRepayment returns principal / periodMonths. Informational only;
// Repay does not enforce it. A zero period yields zero.
func (l *Loan) MonthlyRepayment() decimal.Decimal {
	if l.periodMonths <= 0 {
		return decimal.Zero
	}
	return l.principal.Div(decimal.NewFromInt(int64(l.periodMonths)))
}

// Repay reduces the remaining balance. The amount must be positive and no
// larger than what is outstanding; the balance never goes below zero.
func (l *Loan) Repay(amount decimal.Decimal) error {
	if amount.Sign() <= 0 || l.remaining.Cmp(amount) < 0 {
		return ErrInvalidRepayment
	}
	l.remaining = l.remaining.Sub(amount)
	return nil
}
