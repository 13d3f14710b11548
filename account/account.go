// Package account provides a shared mutable balance in three
// synchronization flavors: unguarded, mutex-guarded, and atomic.
// The unguarded variant exists to demonstrate lost updates under
// contention; the other two exist to prove they don't happen.
package account

import "fmt"

// Account is a mutable integer balance. Deposit and Withdraw adjust it;
// Balance reads it. None of the variants validates amount sign or
// overflow: the interleaving of concurrent mutations is what is under
// test, not the inputs.
type Account interface {
	Deposit(amount int64)
	Withdraw(amount int64)
	Balance() int64
}

// New returns a fresh zero-balance account of the named kind:
// "unsafe", "locked", or "atomic".
func New(kind string) (Account, error) {
	switch kind {
	case "unsafe":
		return NewUnsafe(), nil
	case "locked":
		return NewLocked(), nil
	case "atomic":
		return NewAtomic(), nil
	}
	return nil, fmt.Errorf("account: unknown kind %q", kind)
}

// Kinds lists the variant names accepted by New, in demo order.
func Kinds() []string { return []string{"unsafe", "locked", "atomic"} }
