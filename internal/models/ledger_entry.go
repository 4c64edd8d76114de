package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the balance-affecting event a ledger entry records.
type EntryKind string

const (
	EntryDeposit     EntryKind = "deposit"
	EntryWithdraw    EntryKind = "withdraw"
	EntryAtmWithdraw EntryKind = "atm_withdraw"
	EntryTransfer    EntryKind = "transfer"
	EntryInterest    EntryKind = "interest"
)

// LedgerEntry is an immutable record of one balance-affecting event on one
// account. Entries are appended in chronological order and never mutated or
// reordered afterwards.
type LedgerEntry struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Kind         EntryKind       `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Fee          decimal.Decimal `json:"fee"`
	Counterparty string          `json:"counterparty,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
