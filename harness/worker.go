package harness

import (
	"context"
	"fmt"

	"github.com/NetPo4ki/go-contend/account"
)

// Op selects which account operation a worker performs.
type Op int

const (
	Deposit Op = iota
	Withdraw
)

func (op Op) String() string {
	switch op {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Worker performs a fixed number of deposits or withdrawals against a
// shared account. All fields are set at construction; nothing is
// captured from an enclosing loop. A panic raised by the account call
// is not recovered here; it surfaces at the batch join.
type Worker struct {
	Account    account.Account
	Op         Op
	Amount     int64
	Iterations int
}

// Run invokes the selected operation exactly Iterations times.
func (w Worker) Run(_ context.Context) error {
	switch w.Op {
	case Deposit:
		for i := 0; i < w.Iterations; i++ {
			w.Account.Deposit(w.Amount)
		}
	case Withdraw:
		for i := 0; i < w.Iterations; i++ {
			w.Account.Withdraw(w.Amount)
		}
	default:
		return fmt.Errorf("harness: unknown op %v", w.Op)
	}
	return nil
}
