package interfaces

import (
	"context"

	"github.com/finlabs/retail-banking-core/internal/models"
)

// LedgerStore archives ledger entries and transaction requests, and serves
// them back for history and balance queries. Implementations may be
// in-memory or durable; the core does not care which.
type LedgerStore interface {
	SaveEntry(ctx context.Context, entry models.LedgerEntry) error
	GetEntriesByAccount(accountID string) ([]models.LedgerEntry, error)
	GetLedgerEntries() ([]models.LedgerEntry, error)

	SaveTransaction(tx models.Transaction) error
	GetTransactions() ([]models.Transaction, error)
}
