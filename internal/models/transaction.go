package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxKind identifies which account operation a transaction request targets.
type TxKind string

const (
	TxDeposit  TxKind = "Deposit"
	TxWithdraw TxKind = "Withdraw"
	TxTransfer TxKind = "Transfer"
)

// Transaction represents a generic request against an account: a deposit, a
// withdrawal, or a transfer to a target account. The banking system keeps
// every processed request in its history whether or not the underlying
// operation succeeded; it is a request log, not a success log.
type Transaction struct {
	ID            string          `json:"id"`
	Kind          TxKind          `json:"kind"`
	SourceAccount string          `json:"source_account"`
	TargetAccount string          `json:"target_account,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}
