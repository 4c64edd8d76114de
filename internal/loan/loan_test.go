package loan

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestNewStartsAtPrincipal(t *testing.T) {
	l := New("L1", "cust-1", d(5000), 12)
	if !l.Remaining().Equal(d(5000)) {
		t.Fatalf("remaining=%s want=5000", l.Remaining())
	}
	if !l.Principal().Equal(d(5000)) || l.PeriodMonths() != 12 || l.CustomerID() != "cust-1" {
		t.Fatalf("loan fields unexpected: %+v", l)
	}
}

func TestMonthlyRepayment(t *testing.T) {
	l := New("L1", "cust-1", d(1200), 12)
	if !l.MonthlyRepayment().Equal(d(100)) {
		t.Fatalf("monthly=%s want=100", l.MonthlyRepayment())
	}

	// A zero period cannot divide; the figure is informational anyway.
	zero := New("L2", "cust-1", d(1200), 0)
	if !zero.MonthlyRepayment().IsZero() {
		t.Fatalf("monthly=%s want=0", zero.MonthlyRepayment())
	}
}

func TestRepay(t *testing.T) {
	l := New("L1", "cust-1", d(5000), 12)

	if err := l.Repay(d(500)); err != nil {
		t.Fatal(err)
	}
	if !l.Remaining().Equal(d(4500)) {
		t.Fatalf("remaining=%s want=4500", l.Remaining())
	}
}

func TestRepayRejectsInvalidAmounts(t *testing.T) {
	l := New("L1", "cust-1", d(5000), 12)

	for _, amt := range []int64{0, -100, 6000} {
		if err := l.Repay(d(amt)); !errors.Is(err, ErrInvalidRepayment) {
			t.Fatalf("amt=%d want ErrInvalidRepayment, got %v", amt, err)
		}
	}
	if !l.Remaining().Equal(d(5000)) {
		t.Fatalf("remaining changed on failed repayment: %s", l.Remaining())
	}
}

func TestRepayNeverGoesBelowZero(t *testing.T) {
	l := New("L1", "cust-1", d(100), 12)

	if err := l.Repay(d(100)); err != nil {
		t.Fatal(err)
	}
	if !l.Remaining().IsZero() {
		t.Fatalf("remaining=%s want=0", l.Remaining())
	}

	// Cleared loans reject further repayments.
	if err := l.Repay(d(1)); !errors.Is(err, ErrInvalidRepayment) {
		t.Fatalf("want ErrInvalidRepayment, got %v", err)
	}
}
