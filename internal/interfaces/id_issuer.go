package interfaces

// IDIssuer hands out loan identifiers. The identifier is opaque to the core;
// uniqueness is the issuer's best effort, not a guarantee it enforces.
type IDIssuer interface {
	NextLoanID() string
}
