// Package bank aggregates customers and accounts and dispatches generic
// transaction requests to the right account operation.
package bank

import (
	"sync"

	"github.com/finlabs/retail-banking-core/internal/account"
	"github.com/finlabs/retail-banking-core/internal/customer"
)

// Bank is the named aggregate: a customer list plus a registry of every
// account the system can dispatch to. Removal unlinks references only;
// customers and accounts stay valid for any other holder.
type Bank struct {
	name      string
	mu        sync.Mutex
	customers []*customer.Customer
	accounts  map[string]*account.Account
}

// New creates an empty bank.
func New(name string) *Bank {
	return &Bank{
		name:     name,
		accounts: make(map[string]*account.Account),
	}
}

// Name returns the bank's display name.
func (b *Bank) Name() string { return b.name }

// AddCustomer appends a customer. No uniqueness check; the caller decides.
func (b *Bank) AddCustomer(c *customer.Customer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.customers = append(b.customers, c)
}

// RemoveCustomer unlinks the first customer matching the identifier.
func (b *Bank) RemoveCustomer(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.customers {
		if c.ID() == id {
			b.customers = append(b.customers[:i], b.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}

// Customer returns the customer with the given identifier.
func (b *Bank) Customer(id string) (*customer.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.customers {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Customers returns a copy of the customer list.
func (b *Bank) Customers() []*customer.Customer {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*customer.Customer, len(b.customers))
	copy(out, b.customers)
	return out
}

// RegisterAccount makes an account reachable by transaction dispatch.
// Registering the same number twice replaces the earlier reference.
func (b *Bank) RegisterAccount(a *account.Account) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[a.Number()] = a
}

// Account returns the registered account with the given number.
func (b *Bank) Account(number string) (*account.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}
