package account

import "sync/atomic"

// Atomic keeps its balance in an atomic integer. Each mutation is a
// single indivisible add; a withdrawal adds the negated amount. Nothing
// ever blocks.
type Atomic struct {
	balance atomic.Int64
}

// NewAtomic returns an atomic account with balance zero.
func NewAtomic() *Atomic { return &Atomic{} }

func (a *Atomic) Deposit(amount int64)  { a.balance.Add(amount) }
func (a *Atomic) Withdraw(amount int64) { a.balance.Add(-amount) }
func (a *Atomic) Balance() int64        { return a.balance.Load() }
