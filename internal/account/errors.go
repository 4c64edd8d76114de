package account

import "errors"

var (
	// ErrInvalidAmount rejects non-positive amounts where the operation
	// distinguishes them (deposits, opening balances).
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds means the balance cannot cover the requested
	// debit, fee included. Withdrawals also report non-positive amounts
	// this way; the base contract does not distinguish the two causes.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountFrozen rejects any debit attempted on a frozen account.
	// Deposits stay allowed.
	ErrAccountFrozen = errors.New("account is frozen")

	// ErrLimitExceeded rejects ATM withdrawals above the per-transaction
	// ceiling, before the balance is even consulted.
	ErrLimitExceeded = errors.New("atm withdrawal limit exceeded")

	// ErrTransferFailed is the composite failure of a transfer's
	// preconditions; neither leg executes when it is returned.
	ErrTransferFailed = errors.New("transfer failed")
)
