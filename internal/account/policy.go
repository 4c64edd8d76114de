package account

import "github.com/shopspring/decimal"

// DebitPolicy supplies the fee a direct withdrawal charges on top of the
// requested amount. Making the fee an explicit policy keeps the decision
// visible: Withdraw consults it, ATMWithdraw and Transfer deliberately do
// not (they use the fee-free debit path, matching the historical behavior
// of checking accounts).
type DebitPolicy interface {
	WithdrawFee(amount decimal.Decimal) decimal.Decimal
}

// NoFee charges nothing. Generic and savings accounts use it.
type NoFee struct{}

func (NoFee) WithdrawFee(decimal.Decimal) decimal.Decimal { return decimal.Zero }

// FlatFee charges a fixed amount per withdrawal regardless of size.
// Checking accounts use it.
type FlatFee struct {
	Amount decimal.Decimal
}

func (f FlatFee) WithdrawFee(decimal.Decimal) decimal.Decimal { return f.Amount }
