// Package customer manages a customer's account and loan references.
// The collections are management lists: removing an account unlinks the
// reference, it never destroys the account itself.
package customer

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/finlabs/retail-banking-core/internal/account"
	"github.com/finlabs/retail-banking-core/internal/idgen"
	"github.com/finlabs/retail-banking-core/internal/interfaces"
	"github.com/finlabs/retail-banking-core/internal/loan"
)

// ErrAccountNotFound means no owned account matched the given number.
var ErrAccountNotFound = errors.New("account not found for customer")

// Customer owns references to accounts and loans. Loan identifiers come
// from the injected issuer so tests can make them deterministic.
type Customer struct {
	id       string
	name     string
	email    string
	accounts []*account.Account
	loans    []*loan.Loan
	issuer   interfaces.IDIssuer
}

// New creates a customer. A nil issuer falls back to UUID-based loan IDs.
func New(id, name, email string, issuer interfaces.IDIssuer) *Customer {
	if issuer == nil {
		issuer = idgen.NewUUIDIssuer()
	}
	return &Customer{id: id, name: name, email: email, issuer: issuer}
}

// ID returns the customer identifier.
func (c *Customer) ID() string { return c.id }

// Name returns the customer's current name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer's current email.
func (c *Customer) Email() string { return c.email }

// UpdateInfo overwrites name and email; an empty field keeps the old value.
func (c *Customer) UpdateInfo(name, email string) {
	if name != "" {
		c.name = name
	}
	if email != "" {
		c.email = email
	}
}

// AddAccount appends an account reference. Duplicates are permitted; the
// caller is responsible for uniqueness if it wants any.
func (c *Customer) AddAccount(a *account.Account) {
	c.accounts = append(c.accounts, a)
}

// RemoveAccount unlinks the first reference matching the number. The
// account itself stays valid and usable via any other holder.
func (c *Customer) RemoveAccount(number string) error {
	for i, a := range c.accounts {
		if a.Number() == number {
			c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
			return nil
		}
	}
	return ErrAccountNotFound
}

// Account returns the first owned account matching the number.
func (c *Customer) Account(number string) (*account.Account, error) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Accounts returns a copy of the owned account references.
func (c *Customer) Accounts() []*account.Account {
	out := make([]*account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// ApplyForLoan obtains an identifier from the issuer, creates a loan bound
// to this customer and records it. There is no credit check; any amount and
// period are accepted.
func (c *Customer) ApplyForLoan(amount decimal.Decimal, periodMonths int) *loan.Loan {
	l := loan.New(c.issuer.NextLoanID(), c.id, amount, periodMonths)
	c.loans = append(c.loans, l)
	return l
}

// Loan returns the owned loan with the given identifier.
func (c *Customer) Loan(id string) (*loan.Loan, bool) {
	for _, l := range c.loans {
		if l.ID() == id {
			return l, true
		}
	}
	return nil, false
}

// Loans returns a copy of the owned loan references.
func (c *Customer) Loans() []*loan.Loan {
	out := make([]*loan.Loan, len(c.loans))
	copy(out, c.loans)
	return out
}
