package harness

import (
	"context"
	"sync/atomic"
	"testing"
)

// countingAccount is a test double that counts calls instead of
// tracking a balance.
type countingAccount struct {
	deposits  atomic.Int64
	withdraws atomic.Int64
	reads     atomic.Int64
}

func (a *countingAccount) Deposit(int64)  { a.deposits.Add(1) }
func (a *countingAccount) Withdraw(int64) { a.withdraws.Add(1) }
func (a *countingAccount) Balance() int64 { a.reads.Add(1); return 0 }

func (a *countingAccount) calls() int64 {
	return a.deposits.Load() + a.withdraws.Load() + a.reads.Load()
}

func TestWorkerExactIterationCount(t *testing.T) {
	t.Parallel()
	acct := &countingAccount{}
	w := Worker{Account: acct, Op: Deposit, Amount: 100, Iterations: 1000}
	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := acct.deposits.Load(); got != 1000 {
		t.Fatalf("deposits = %d, want 1000", got)
	}
	if got := acct.withdraws.Load(); got != 0 {
		t.Fatalf("withdraws = %d, want 0", got)
	}
}

func TestWorkerWithdrawSide(t *testing.T) {
	t.Parallel()
	acct := &countingAccount{}
	w := Worker{Account: acct, Op: Withdraw, Amount: 100, Iterations: 7}
	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := acct.withdraws.Load(); got != 7 {
		t.Fatalf("withdraws = %d, want 7", got)
	}
}

func TestWorkerZeroIterations(t *testing.T) {
	t.Parallel()
	acct := &countingAccount{}
	w := Worker{Account: acct, Op: Deposit, Amount: 100}
	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := acct.calls(); got != 0 {
		t.Fatalf("account calls = %d, want 0", got)
	}
}

func TestWorkerUnknownOp(t *testing.T) {
	t.Parallel()
	w := Worker{Account: &countingAccount{}, Op: Op(42), Iterations: 1}
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for unknown op")
	}
}

func TestOpString(t *testing.T) {
	t.Parallel()
	if Deposit.String() != "deposit" || Withdraw.String() != "withdraw" {
		t.Fatalf("unexpected op names: %v, %v", Deposit, Withdraw)
	}
}
