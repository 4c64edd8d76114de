package bank

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finlabs/retail-banking-core/internal/interfaces"
	"github.com/finlabs/retail-banking-core/internal/metrics"
	"github.com/finlabs/retail-banking-core/internal/models"
)

// System dispatches generic transaction requests to account operations and
// keeps the flat request history. Accounts themselves assume a single
// caller at a time, so the system serializes access with one mutex per
// account, taken in a stable order for transfers.
type System struct {
	bank    *Bank
	store   interfaces.LedgerStore
	metrics metrics.Collector
	log     *zap.Logger

	muMap map[string]*sync.Mutex
	mapMu sync.Mutex
}

// SystemOption customizes a System at construction time.
type SystemOption func(*System)

// WithLogger substitutes the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) SystemOption {
	return func(s *System) { s.log = log }
}

// WithMetrics substitutes the metrics collector. Defaults to no-op.
func WithMetrics(c metrics.Collector) SystemOption {
	return func(s *System) { s.metrics = c }
}

// NewSystem creates a banking system over a bank and a history store.
func NewSystem(bank *Bank, store interfaces.LedgerStore, opts ...SystemOption) *System {
	s := &System{
		bank:    bank,
		store:   store,
		metrics: metrics.NoOpCollector{},
		log:     zap.NewNop(),
		muMap:   make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bank returns the underlying aggregate.
func (s *System) Bank() *Bank { return s.bank }

func (s *System) accountLock(accountID string) *sync.Mutex {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()
	if _, exists := s.muMap[accountID]; !exists {
		s.muMap[accountID] = &sync.Mutex{}
	}
	return s.muMap[accountID]
}

// Process records the request in the history and dispatches it to the
// matching account operation. Every request lands in the history, failed
// ones included; the returned error reports the operation's outcome.
func (s *System) Process(ctx context.Context, tx models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	// Request log first: the history keeps failed attempts too.
	if err := s.store.SaveTransaction(tx); err != nil {
		return err
	}

	err := s.dispatch(ctx, tx)

	s.metrics.RecordTransaction(string(tx.Kind), err == nil)
	if err != nil {
		s.log.Warn("transaction failed",
			zap.String("tx_id", tx.ID),
			zap.String("kind", string(tx.Kind)),
			zap.String("source", tx.SourceAccount),
			zap.Error(err))
		return err
	}
	s.log.Info("transaction processed",
		zap.String("tx_id", tx.ID),
		zap.String("kind", string(tx.Kind)),
		zap.String("source", tx.SourceAccount),
		zap.String("target", tx.TargetAccount),
		zap.String("amount", tx.Amount.String()))
	return nil
}

func (s *System) dispatch(ctx context.Context, tx models.Transaction) error {
	src, err := s.bank.Account(tx.SourceAccount)
	if err != nil {
		return err
	}

	switch tx.Kind {
	case models.TxDeposit:
		mu := s.accountLock(src.Number())
		mu.Lock()
		defer mu.Unlock()

		entry, err := src.Deposit(tx.Amount)
		s.metrics.RecordOperation("deposit", err == nil)
		if err != nil {
			return err
		}
		s.archive(ctx, entry)
		return nil

	case models.TxWithdraw:
		mu := s.accountLock(src.Number())
		mu.Lock()
		defer mu.Unlock()

		entry, err := src.Withdraw(tx.Amount)
		s.metrics.RecordOperation("withdraw", err == nil)
		if err != nil {
			return err
		}
		s.archive(ctx, entry)
		return nil

	case models.TxTransfer:
		target, err := s.bank.Account(tx.TargetAccount)
		if err != nil {
			return err
		}

		srcMu := s.accountLock(src.Number())
		tgtMu := s.accountLock(target.Number())

		// Lock in a stable order to avoid deadlocks.
		if src.Number() < target.Number() {
			srcMu.Lock()
			tgtMu.Lock()
		} else if src.Number() > target.Number() {
			tgtMu.Lock()
			srcMu.Lock()
		} else {
			srcMu.Lock()
			tgtMu = nil
		}
		defer func() {
			srcMu.Unlock()
			if tgtMu != nil {
				tgtMu.Unlock()
			}
		}()

		debit, credit, err := src.Transfer(target, tx.Amount)
		s.metrics.RecordOperation("transfer", err == nil)
		if err != nil {
			return err
		}
		s.archive(ctx, debit)
		s.archive(ctx, credit)
		return nil

	default:
		return ErrUnknownTransactionKind
	}
}

// archive mirrors a ledger entry into the store. The entry already lives in
// the account's own ledger; a failing archive is logged, never propagated,
// so a dead store cannot undo a balance mutation.
func (s *System) archive(ctx context.Context, entry models.LedgerEntry) {
	if err := s.store.SaveEntry(ctx, entry); err != nil {
		s.log.Warn("ledger archive failed",
			zap.String("entry_id", entry.ID),
			zap.String("account", entry.AccountID),
			zap.Error(err))
	}
}

// Balance returns the registered account's current balance.
func (s *System) Balance(accountID string) (decimal.Decimal, error) {
	a, err := s.bank.Account(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	mu := s.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()
	return a.Balance(), nil
}

// Transactions returns the full request history in arrival order.
func (s *System) Transactions() ([]models.Transaction, error) {
	return s.store.GetTransactions()
}

// Entries returns every archived ledger entry.
func (s *System) Entries() ([]models.LedgerEntry, error) {
	return s.store.GetLedgerEntries()
}

// EntriesByAccount returns the archived entries touching one account.
func (s *System) EntriesByAccount(accountID string) ([]models.LedgerEntry, error) {
	return s.store.GetEntriesByAccount(accountID)
}
