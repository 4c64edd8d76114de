package postgres

import (
	"context"
	"database/sql"

	"github.com/finlabs/retail-banking-core/internal/interfaces"
	"github.com/finlabs/retail-banking-core/internal/models"
)

// Store archives ledger entries and transaction requests in postgres behind
// the same interface as the in-memory store. Durability is an optional
// extension point, not a core guarantee; wire it only when a database is
// actually configured.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (p *Store) SaveEntry(ctx context.Context, entry models.LedgerEntry) error {
	const query = `INSERT INTO ledger_entries (id, account_id, kind, amount, fee, counterparty, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := p.db.ExecContext(ctx, query,
		entry.ID, entry.AccountID, string(entry.Kind), entry.Amount, entry.Fee, entry.Counterparty, entry.CreatedAt)
	return err
}

func (p *Store) GetLedgerEntries() ([]models.LedgerEntry, error) {
	const query = `SELECT id, account_id, kind, amount, fee, counterparty, created_at
	FROM ledger_entries ORDER BY created_at`

	rows, err := p.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *Store) GetEntriesByAccount(accountID string) ([]models.LedgerEntry, error) {
	const query = `SELECT id, account_id, kind, amount, fee, counterparty, created_at
	FROM ledger_entries WHERE account_id = $1 ORDER BY created_at`

	rows, err := p.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *Store) SaveTransaction(tx models.Transaction) error {
	const query = `INSERT INTO transactions (id, kind, source_account, target_account, amount, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := p.db.Exec(query, tx.ID, string(tx.Kind), tx.SourceAccount, tx.TargetAccount, tx.Amount, tx.CreatedAt)
	return err
}

func (p *Store) GetTransactions() ([]models.Transaction, error) {
	const query = `SELECT id, kind, source_account, target_account, amount, created_at
	FROM transactions ORDER BY created_at`

	rows, err := p.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var kind string
		if err := rows.Scan(&tx.ID, &kind, &tx.SourceAccount, &tx.TargetAccount, &tx.Amount, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.Kind = models.TxKind(kind)
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var kind string
		if err := rows.Scan(&e.ID, &e.AccountID, &kind, &e.Amount, &e.Fee, &e.Counterparty, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = models.EntryKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ interfaces.LedgerStore = (*Store)(nil)
