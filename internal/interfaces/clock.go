package interfaces

import "time"

// Clock supplies timestamps for ledger entries. The core only ever reads it.
type Clock interface {
	Now() time.Time
}
