package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlabs/retail-banking-core/internal/interfaces"
	"github.com/finlabs/retail-banking-core/internal/models"
	"github.com/finlabs/retail-banking-core/internal/models/events"
)

// Kind tags the account variant. The variant decides the debit policy the
// account was constructed with; nothing else dispatches on it.
type Kind string

const (
	KindGeneric  Kind = "Generic"
	KindSavings  Kind = "Savings"
	KindChecking Kind = "Checking"
)

// DefaultATMLimit is the per-transaction ceiling for ATM withdrawals,
// enforced before the balance check.
var DefaultATMLimit = decimal.NewFromInt(1000)

// Account holds a balance, a frozen flag and an append-only ledger of every
// balance-affecting event. A successful operation mutates the balance and
// appends exactly one ledger entry; a failed operation changes nothing.
//
// Accounts are not safe for concurrent use. The model assumes a single
// logical actor at a time; callers running concurrently must serialize
// access themselves (the bank layer does).
type Account struct {
	number   string
	kind     Kind
	balance  decimal.Decimal
	frozen   bool
	ledger   []models.LedgerEntry
	policy   DebitPolicy
	atmLimit decimal.Decimal
	clock    interfaces.Clock
	events   interfaces.EventPublisher
}

// Option customizes an account at construction time.
type Option func(*Account)

// WithClock substitutes the timestamp source for ledger entries.
func WithClock(c interfaces.Clock) Option {
	return func(a *Account) { a.clock = c }
}

// WithEvents wires an operation-event sink. Publish failures are ignored;
// the account never lets the sink affect a balance mutation.
func WithEvents(p interfaces.EventPublisher) Option {
	return func(a *Account) { a.events = p }
}

// WithATMLimit overrides the default ATM per-transaction ceiling.
func WithATMLimit(limit decimal.Decimal) Option {
	return func(a *Account) { a.atmLimit = limit }
}

// WithPolicy overrides the debit policy the variant constructor chose.
func WithPolicy(p DebitPolicy) Option {
	return func(a *Account) { a.policy = p }
}

// New creates a generic account. The opening balance may be zero but never
// negative.
func New(number string, opening decimal.Decimal, opts ...Option) (*Account, error) {
	return newAccount(number, KindGeneric, opening, NoFee{}, opts...)
}

func newAccount(number string, kind Kind, opening decimal.Decimal, policy DebitPolicy, opts ...Option) (*Account, error) {
	if opening.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	a := &Account{
		number:   number,
		kind:     kind,
		balance:  opening,
		policy:   policy,
		atmLimit: DefaultATMLimit,
		clock:    systemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Number returns the immutable account identifier.
func (a *Account) Number() string { return a.number }

// Kind returns the variant tag.
func (a *Account) Kind() Kind { return a.kind }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Frozen reports whether debits are currently rejected.
func (a *Account) Frozen() bool { return a.frozen }

// Ledger returns a copy of the account's entries so callers cannot mutate
// the internal slice.
func (a *Account) Ledger() []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(a.ledger))
	copy(out, a.ledger)
	return out
}

// Deposit credits the account. Deposits are allowed on frozen accounts.
func (a *Account) Deposit(amount decimal.Decimal) (models.LedgerEntry, error) {
	if amount.Sign() <= 0 {
		return models.LedgerEntry{}, a.fail("deposit", amount, ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return a.append(models.EntryDeposit, "deposit", amount, decimal.Zero, ""), nil
}

// Withdraw debits the requested amount plus whatever fee the account's
// debit policy charges. Amount and fee must be covered together; there is
// no partial debit.
func (a *Account) Withdraw(amount decimal.Decimal) (models.LedgerEntry, error) {
	if a.frozen {
		return models.LedgerEntry{}, a.fail("withdraw", amount, ErrAccountFrozen)
	}
	fee := a.policy.WithdrawFee(amount)
	if amount.Sign() <= 0 || a.balance.Cmp(amount.Add(fee)) < 0 {
		return models.LedgerEntry{}, a.fail("withdraw", amount, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount.Add(fee))
	return a.append(models.EntryWithdraw, "withdraw", amount, fee, ""), nil
}

// ATMWithdraw behaves like a fee-free withdrawal with a per-transaction
// ceiling checked before the balance.
func (a *Account) ATMWithdraw(amount decimal.Decimal) (models.LedgerEntry, error) {
	if a.frozen {
		return models.LedgerEntry{}, a.fail("atm_withdraw", amount, ErrAccountFrozen)
	}
	if amount.Cmp(a.atmLimit) > 0 {
		return models.LedgerEntry{}, a.fail("atm_withdraw", amount, ErrLimitExceeded)
	}
	if amount.Sign() <= 0 || a.balance.Cmp(amount) < 0 {
		return models.LedgerEntry{}, a.fail("atm_withdraw", amount, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return a.append(models.EntryAtmWithdraw, "atm_withdraw", amount, decimal.Zero, ""), nil
}

// Transfer debits this account and credits the target with the same amount.
// Either both legs execute or neither does. The debit leg is fee-free for
// every variant, checking accounts included; see the debit policy notes.
func (a *Account) Transfer(target *Account, amount decimal.Decimal) (debit, credit models.LedgerEntry, err error) {
	if a.frozen {
		return debit, credit, a.fail("transfer", amount, ErrAccountFrozen)
	}
	if target == nil || amount.Sign() <= 0 || a.balance.Cmp(amount) < 0 {
		return debit, credit, a.fail("transfer", amount, ErrTransferFailed)
	}
	a.balance = a.balance.Sub(amount)
	debit = a.append(models.EntryTransfer, "transfer", amount, decimal.Zero, target.number)
	// Amount is already validated positive, so the credit leg cannot fail.
	credit, _ = target.Deposit(amount)
	return debit, credit, nil
}

// Freeze blocks debits until Unfreeze. Idempotent.
func (a *Account) Freeze() {
	a.frozen = true
	a.emit("freeze", decimal.Zero, decimal.Zero, "", nil)
}

// Unfreeze re-enables debits. Idempotent.
func (a *Account) Unfreeze() {
	a.frozen = false
	a.emit("unfreeze", decimal.Zero, decimal.Zero, "", nil)
}

func (a *Account) append(kind models.EntryKind, op string, amount, fee decimal.Decimal, counterparty string) models.LedgerEntry {
	entry := models.LedgerEntry{
		ID:           uuid.NewString(),
		AccountID:    a.number,
		Kind:         kind,
		Amount:       amount,
		Fee:          fee,
		Counterparty: counterparty,
		CreatedAt:    a.clock.Now(),
	}
	a.ledger = append(a.ledger, entry)
	a.emit(op, amount, fee, counterparty, nil)
	return entry
}

func (a *Account) fail(op string, amount decimal.Decimal, err error) error {
	a.emit(op, amount, decimal.Zero, "", err)
	return err
}

func (a *Account) emit(op string, amount, fee decimal.Decimal, counterparty string, opErr error) {
	if a.events == nil {
		return
	}
	evt := events.OperationEvent{
		Operation:    op,
		AccountID:    a.number,
		Amount:       amount,
		Fee:          fee,
		Counterparty: counterparty,
		Success:      opErr == nil,
		Balance:      a.balance,
		OccurredAt:   a.clock.Now(),
	}
	if opErr != nil {
		evt.Reason = opErr.Error()
	}
	// A dead sink must never block or undo a balance mutation.
	_ = a.events.Publish(events.Topic, evt)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
