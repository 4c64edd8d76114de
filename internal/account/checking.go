package account

import "github.com/shopspring/decimal"

// DefaultWithdrawFee is the flat fee a checking account charges per direct
// withdrawal.
var DefaultWithdrawFee = decimal.NewFromInt(2)

// CheckingAccount is an account whose direct withdrawals charge a flat fee.
// The fee applies only through Withdraw: ATM withdrawals and the debit leg
// of transfers use the fee-free path, preserving the historical asymmetry.
type CheckingAccount struct {
	*Account
}

// NewChecking creates a checking account with the default flat withdrawal
// fee. Use WithPolicy to change the fee.
func NewChecking(number string, opening decimal.Decimal, opts ...Option) (*CheckingAccount, error) {
	base, err := newAccount(number, KindChecking, opening, FlatFee{Amount: DefaultWithdrawFee}, opts...)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{Account: base}, nil
}
