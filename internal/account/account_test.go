package account

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	eventsmem "github.com/finlabs/retail-banking-core/internal/events/memory"
	"github.com/finlabs/retail-banking-core/internal/models"
	"github.com/finlabs/retail-banking-core/internal/models/events"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// fixedClock pins entry timestamps so tests can assert on them.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func mustNew(t *testing.T, number string, opening int64, opts ...Option) *Account {
	t.Helper()
	a, err := New(number, d(opening), opts...)
	if err != nil {
		t.Fatalf("New(%s, %d): %v", number, opening, err)
	}
	return a
}

func TestNewRejectsNegativeOpening(t *testing.T) {
	if _, err := New("123", d(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
}

func TestDeposit(t *testing.T) {
	a := mustNew(t, "123", 100)

	entry, err := a.Deposit(d(50))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(d(150)) {
		t.Fatalf("balance=%s want=150", a.Balance())
	}
	if entry.Kind != models.EntryDeposit || !entry.Amount.Equal(d(50)) {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestDepositInvalidAmountLeavesStateUnchanged(t *testing.T) {
	a := mustNew(t, "123", 100)

	for _, amt := range []int64{0, -10} {
		if _, err := a.Deposit(d(amt)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amt=%d want ErrInvalidAmount, got %v", amt, err)
		}
	}
	if !a.Balance().Equal(d(100)) {
		t.Fatalf("balance=%s want=100", a.Balance())
	}
	if len(a.Ledger()) != 0 {
		t.Fatalf("ledger len=%d want=0", len(a.Ledger()))
	}
}

func TestWithdraw(t *testing.T) {
	a := mustNew(t, "123", 1000)

	if _, err := a.Withdraw(d(500)); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(d(500)) {
		t.Fatalf("balance=%s want=500", a.Balance())
	}
	if got := a.Ledger(); len(got) != 1 || got[0].Kind != models.EntryWithdraw {
		t.Fatalf("ledger unexpected: %+v", got)
	}
}

func TestWithdrawFailures(t *testing.T) {
	a := mustNew(t, "123", 100)

	// Non-positive amounts and shortfalls report the same way: the base
	// contract does not distinguish the two causes.
	for _, amt := range []int64{0, -5, 101} {
		if _, err := a.Withdraw(d(amt)); !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("amt=%d want ErrInsufficientFunds, got %v", amt, err)
		}
	}
	if !a.Balance().Equal(d(100)) || len(a.Ledger()) != 0 {
		t.Fatalf("state changed on failed withdraw: balance=%s ledger=%d", a.Balance(), len(a.Ledger()))
	}
}

func TestFrozenAccountRejectsDebitsButAcceptsDeposits(t *testing.T) {
	a := mustNew(t, "123", 1000)
	target := mustNew(t, "456", 0)
	a.Freeze()

	if _, err := a.Withdraw(d(10)); !errors.Is(err, ErrAccountFrozen) {
		t.Fatalf("withdraw: want ErrAccountFrozen, got %v", err)
	}
	if _, err := a.ATMWithdraw(d(10)); !errors.Is(err, ErrAccountFrozen) {
		t.Fatalf("atm withdraw: want ErrAccountFrozen, got %v", err)
	}
	if _, _, err := a.Transfer(target, d(10)); !errors.Is(err, ErrAccountFrozen) {
		t.Fatalf("transfer: want ErrAccountFrozen, got %v", err)
	}
	if !a.Balance().Equal(d(1000)) {
		t.Fatalf("balance changed on frozen account: %s", a.Balance())
	}

	if _, err := a.Deposit(d(25)); err != nil {
		t.Fatalf("deposit on frozen account should succeed: %v", err)
	}
	if !a.Balance().Equal(d(1025)) {
		t.Fatalf("balance=%s want=1025", a.Balance())
	}

	a.Unfreeze()
	if _, err := a.Withdraw(d(10)); err != nil {
		t.Fatalf("withdraw after unfreeze: %v", err)
	}
}

func TestFreezeIsIdempotent(t *testing.T) {
	a := mustNew(t, "123", 100)
	a.Freeze()
	a.Freeze()
	if !a.Frozen() {
		t.Fatal("account should be frozen")
	}
	a.Unfreeze()
	a.Unfreeze()
	if a.Frozen() {
		t.Fatal("account should be unfrozen")
	}
}

func TestATMWithdrawLimitCheckedBeforeBalance(t *testing.T) {
	a := mustNew(t, "123", 5000)

	// Funds are plentiful; the ceiling still rejects first.
	if _, err := a.ATMWithdraw(d(1001)); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}
	if !a.Balance().Equal(d(5000)) {
		t.Fatalf("balance=%s want=5000", a.Balance())
	}

	entry, err := a.ATMWithdraw(d(1000))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(d(4000)) {
		t.Fatalf("balance=%s want=4000", a.Balance())
	}
	if entry.Kind != models.EntryAtmWithdraw {
		t.Fatalf("entry kind=%s want=%s", entry.Kind, models.EntryAtmWithdraw)
	}
}

func TestATMWithdrawInsufficientFunds(t *testing.T) {
	a := mustNew(t, "123", 50)
	if _, err := a.ATMWithdraw(d(100)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
}

func TestATMWithdrawCustomLimit(t *testing.T) {
	a := mustNew(t, "123", 1000, WithATMLimit(d(200)))
	if _, err := a.ATMWithdraw(d(201)); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}
	if _, err := a.ATMWithdraw(d(200)); err != nil {
		t.Fatal(err)
	}
}

func TestTransferConservesTotal(t *testing.T) {
	a := mustNew(t, "A", 1000)
	b := mustNew(t, "B", 1000)

	debit, credit, err := a.Transfer(b, d(500))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(d(500)) {
		t.Fatalf("source balance=%s want=500", a.Balance())
	}
	if !b.Balance().Equal(d(1500)) {
		t.Fatalf("target balance=%s want=1500", b.Balance())
	}
	if total := a.Balance().Add(b.Balance()); !total.Equal(d(2000)) {
		t.Fatalf("total=%s want=2000", total)
	}
	if debit.Kind != models.EntryTransfer || debit.Counterparty != "B" {
		t.Fatalf("debit entry unexpected: %+v", debit)
	}
	if credit.Kind != models.EntryDeposit || credit.AccountID != "B" {
		t.Fatalf("credit entry unexpected: %+v", credit)
	}
}

func TestTransferFailureExecutesNeitherLeg(t *testing.T) {
	a := mustNew(t, "A", 100)
	b := mustNew(t, "B", 100)

	for _, amt := range []int64{0, -1, 101} {
		if _, _, err := a.Transfer(b, d(amt)); !errors.Is(err, ErrTransferFailed) {
			t.Fatalf("amt=%d want ErrTransferFailed, got %v", amt, err)
		}
	}
	if _, _, err := a.Transfer(nil, d(10)); !errors.Is(err, ErrTransferFailed) {
		t.Fatalf("nil target: want ErrTransferFailed, got %v", err)
	}
	if !a.Balance().Equal(d(100)) || !b.Balance().Equal(d(100)) {
		t.Fatalf("balances changed on failed transfer: %s %s", a.Balance(), b.Balance())
	}
	if len(a.Ledger()) != 0 || len(b.Ledger()) != 0 {
		t.Fatal("ledger entries appended on failed transfer")
	}
}

func TestLedgerIsChronologicalAndCopied(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := mustNew(t, "123", 1000, WithClock(fixedClock{t: now}))

	a.Deposit(d(10))
	a.Withdraw(d(20))
	a.ATMWithdraw(d(30))

	ledger := a.Ledger()
	if len(ledger) != 3 {
		t.Fatalf("ledger len=%d want=3", len(ledger))
	}
	kinds := []models.EntryKind{models.EntryDeposit, models.EntryWithdraw, models.EntryAtmWithdraw}
	for i, want := range kinds {
		if ledger[i].Kind != want {
			t.Fatalf("ledger[%d].Kind=%s want=%s", i, ledger[i].Kind, want)
		}
		if !ledger[i].CreatedAt.Equal(now) {
			t.Fatalf("ledger[%d].CreatedAt=%s want=%s", i, ledger[i].CreatedAt, now)
		}
	}

	// Mutating the returned slice must not touch the account's ledger.
	ledger[0].Amount = d(999999)
	if a.Ledger()[0].Amount.Equal(d(999999)) {
		t.Fatal("Ledger() must return a copy")
	}
}

func TestCheckingWithdrawChargesFee(t *testing.T) {
	ca, err := NewChecking("789", d(1500))
	if err != nil {
		t.Fatal(err)
	}

	entry, err := ca.Withdraw(d(100))
	if err != nil {
		t.Fatal(err)
	}
	if !ca.Balance().Equal(d(1398)) {
		t.Fatalf("balance=%s want=1398", ca.Balance())
	}
	if !entry.Fee.Equal(d(2)) || !entry.Amount.Equal(d(100)) {
		t.Fatalf("entry unexpected: %+v", entry)
	}
}

func TestCheckingWithdrawRequiresAmountPlusFee(t *testing.T) {
	ca, err := NewChecking("789", d(101))
	if err != nil {
		t.Fatal(err)
	}

	// 101 covers the amount but not the fee; the whole debit fails.
	if _, err := ca.Withdraw(d(100)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if !ca.Balance().Equal(d(101)) {
		t.Fatalf("partial debit: balance=%s want=101", ca.Balance())
	}

	if _, err := ca.Withdraw(d(99)); err != nil {
		t.Fatal(err)
	}
	if !ca.Balance().Equal(d(0)) {
		t.Fatalf("balance=%s want=0", ca.Balance())
	}
}

func TestCheckingWithdrawHonorsFrozenState(t *testing.T) {
	ca, err := NewChecking("789", d(500))
	if err != nil {
		t.Fatal(err)
	}
	ca.Freeze()
	if _, err := ca.Withdraw(d(10)); !errors.Is(err, ErrAccountFrozen) {
		t.Fatalf("want ErrAccountFrozen, got %v", err)
	}
}

func TestCheckingFeeBypassedByATMAndTransfer(t *testing.T) {
	ca, err := NewChecking("789", d(1000))
	if err != nil {
		t.Fatal(err)
	}
	target := mustNew(t, "456", 0)

	// ATM withdrawals and the debit leg of transfers use the fee-free
	// path; only direct withdrawals charge the flat fee.
	if _, err := ca.ATMWithdraw(d(100)); err != nil {
		t.Fatal(err)
	}
	if !ca.Balance().Equal(d(900)) {
		t.Fatalf("balance after atm=%s want=900", ca.Balance())
	}

	if _, _, err := ca.Transfer(target, d(300)); err != nil {
		t.Fatal(err)
	}
	if !ca.Balance().Equal(d(600)) {
		t.Fatalf("balance after transfer=%s want=600", ca.Balance())
	}
	if !target.Balance().Equal(d(300)) {
		t.Fatalf("target balance=%s want=300", target.Balance())
	}
}

func TestSavingsApplyInterest(t *testing.T) {
	sa, err := NewSavings("555", d(2000), decimal.NewFromFloat(0.03))
	if err != nil {
		t.Fatal(err)
	}

	entry := sa.ApplyInterest()
	if !sa.Balance().Equal(d(2060)) {
		t.Fatalf("balance=%s want=2060", sa.Balance())
	}
	if entry.Kind != models.EntryInterest || !entry.Amount.Equal(d(60)) {
		t.Fatalf("entry unexpected: %+v", entry)
	}

	// Repeated calls compound.
	sa.ApplyInterest()
	if want := decimal.NewFromFloat(2121.8); !sa.Balance().Equal(want) {
		t.Fatalf("balance=%s want=%s", sa.Balance(), want)
	}
}

func TestSavingsInterestAccruesWhileFrozen(t *testing.T) {
	sa, err := NewSavings("555", d(1000), decimal.NewFromFloat(0.1))
	if err != nil {
		t.Fatal(err)
	}
	sa.Freeze()
	sa.ApplyInterest()
	if !sa.Balance().Equal(d(1100)) {
		t.Fatalf("balance=%s want=1100", sa.Balance())
	}
}

func TestSavingsZeroRateDefaults(t *testing.T) {
	sa, err := NewSavings("555", d(100), decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	if !sa.InterestRate().Equal(DefaultInterestRate) {
		t.Fatalf("rate=%s want=%s", sa.InterestRate(), DefaultInterestRate)
	}
}

func TestOperationsEmitEvents(t *testing.T) {
	pub := eventsmem.NewPublisher()
	a := mustNew(t, "123", 100, WithEvents(pub))

	a.Deposit(d(50))
	a.Withdraw(d(5000)) // fails

	published := pub.Events()
	if len(published) != 2 {
		t.Fatalf("events len=%d want=2", len(published))
	}

	first, ok := published[0].Event.(events.OperationEvent)
	if !ok {
		t.Fatalf("event type %T", published[0].Event)
	}
	if !first.Success || first.Operation != "deposit" || !first.Balance.Equal(d(150)) {
		t.Fatalf("deposit event unexpected: %+v", first)
	}

	second := published[1].Event.(events.OperationEvent)
	if second.Success || second.Operation != "withdraw" || second.Reason == "" {
		t.Fatalf("failure event unexpected: %+v", second)
	}
	if !second.Balance.Equal(d(150)) {
		t.Fatalf("failure event balance=%s want=150", second.Balance)
	}
}
