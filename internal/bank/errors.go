package bank

import "errors"

var (
	// ErrCustomerNotFound means no customer matched the given identifier.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrAccountNotFound means no registered account matched the given
	// number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUnknownTransactionKind rejects transaction requests whose kind
	// maps to no account operation.
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")
)
