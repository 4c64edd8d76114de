package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topic is the default topic operation events are published under.
const Topic = "account_operations"

// OperationEvent is the structured notification an account operation emits
// in place of console output. Both successful and failed operations produce
// one; a presentation layer decides how to format it.
type OperationEvent struct {
	Operation    string          `json:"operation"`
	AccountID    string          `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Fee          decimal.Decimal `json:"fee"`
	Counterparty string          `json:"counterparty,omitempty"`
	Success      bool            `json:"success"`
	Reason       string          `json:"reason,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
