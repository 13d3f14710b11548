package account

import "sync"

// Locked guards its balance with a per-instance mutex. At most one
// mutator is inside a method at a time; no fairness among waiters.
type Locked struct {
	mu      sync.Mutex
	balance int64
}

// NewLocked returns a mutex-guarded account with balance zero.
func NewLocked() *Locked { return &Locked{} }

func (a *Locked) Deposit(amount int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
}

func (a *Locked) Withdraw(amount int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance -= amount
}

func (a *Locked) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}
