package memory

import (
	"context"
	"sync"

	"github.com/finlabs/retail-banking-core/internal/interfaces"
	"github.com/finlabs/retail-banking-core/internal/models"
)

// Store is the in-memory implementation of interfaces.LedgerStore. It keeps
// ledger entries and transaction requests in insertion order and is safe
// for concurrent use.
type Store struct {
	mu           sync.Mutex
	entries      []models.LedgerEntry
	transactions []models.Transaction
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		entries:      make([]models.LedgerEntry, 0),
		transactions: make([]models.Transaction, 0),
	}
}

// SaveEntry archives one ledger entry. Never fails in memory.
func (s *Store) SaveEntry(_ context.Context, entry models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// GetLedgerEntries returns a copy of every archived entry, in the order
// they were saved.
func (s *Store) GetLedgerEntries() ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// GetEntriesByAccount returns the archived entries touching one account.
func (s *Store) GetEntriesByAccount(accountID string) ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.LedgerEntry
	for _, e := range s.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

// SaveTransaction appends a request to the history. Failed requests are
// saved too; the history is a request log, not a success log.
func (s *Store) SaveTransaction(tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
	return nil
}

// GetTransactions returns a copy of the request history in arrival order.
func (s *Store) GetTransactions() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

var _ interfaces.LedgerStore = (*Store)(nil)
