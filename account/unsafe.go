package account

// Unsafe mutates its balance with a plain read-modify-write and no
// exclusion. Two concurrent mutations whose windows overlap can lose
// one of the updates; that is the documented behavior of this variant,
// not a bug to fix.
type Unsafe struct {
	balance int64
}

// NewUnsafe returns an unguarded account with balance zero.
func NewUnsafe() *Unsafe { return &Unsafe{} }

func (a *Unsafe) Deposit(amount int64) {
	b := a.balance
	b += amount
	a.balance = b
}

func (a *Unsafe) Withdraw(amount int64) {
	b := a.balance
	b -= amount
	a.balance = b
}

func (a *Unsafe) Balance() int64 { return a.balance }
