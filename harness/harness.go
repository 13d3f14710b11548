package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NetPo4ki/go-contend/account"
)

// ErrNilAccount is returned by Run when no account is supplied. It is
// reported before any worker is spawned.
var ErrNilAccount = errors.New("harness: nil account")

type Option func(*Options)

type Options struct {
	Rounds         int
	WorkersPerSide int
	Amount         int64
	Iterations     int
	PanicAsError   bool
	Observer       Observer
	SpawnLimit     int
}

func defaultOptions() Options {
	return Options{
		Rounds:         10,
		WorkersPerSide: 10,
		Amount:         100,
		Iterations:     1000,
		PanicAsError:   true,
	}
}

// WithRounds sets how many worker rounds a run performs.
func WithRounds(n int) Option { return func(o *Options) { o.Rounds = n } }

// WithWorkersPerSide sets how many deposit workers and how many
// withdraw workers each round spawns (the round total is twice this).
func WithWorkersPerSide(n int) Option { return func(o *Options) { o.WorkersPerSide = n } }

// WithAmount sets the amount moved per deposit or withdraw call.
func WithAmount(a int64) Option { return func(o *Options) { o.Amount = a } }

// WithIterations sets how many operations each worker performs.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithObserver attaches lifecycle hooks to the run and its batches.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// WithSpawnLimit bounds how many workers run at once within a batch.
// Zero means unlimited, which is the point of a contention test.
func WithSpawnLimit(n int) Option { return func(o *Options) { o.SpawnLimit = n } }

// WithPanicAsError controls whether worker panics are converted to
// errors at the join point (default) or re-raised.
func WithPanicAsError(v bool) Option { return func(o *Options) { o.PanicAsError = v } }

// Report is the outcome of one harness run: the balance observed after
// each completed round, in round order.
type Report struct {
	RunID    uuid.UUID
	Balances []int64
}

// Run executes rounds of paired deposit/withdraw workers against acct
// and records the balance observed after each round. The same account
// is reused across rounds, so state carries over: a balanced round
// leaves the balance exactly where the previous round left it.
//
// A faulted round ends the run. Its balance observation is still
// recorded, and the returned error joins every failure the round's
// barrier collected. Retrying failed workers would corrupt the
// iteration-count arithmetic the expected balance is derived from, so
// there are no retries.
func Run(ctx context.Context, acct account.Account, optFns ...Option) (*Report, error) {
	if acct == nil {
		return nil, ErrNilAccount
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	obs := opts.Observer
	if obs != nil {
		obs.RunStarted(ctx)
	}

	report := &Report{RunID: uuid.New(), Balances: make([]int64, 0, opts.Rounds)}
	for round := 1; round <= opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			if obs != nil {
				obs.RunFinished(ctx, err)
			}
			return report, err
		}

		start := time.Now()
		b := newBatch(ctx, opts)
		for i := 0; i < opts.WorkersPerSide; i++ {
			b.Go(Worker{Account: acct, Op: Deposit, Amount: opts.Amount, Iterations: opts.Iterations}.Run)
			b.Go(Worker{Account: acct, Op: Withdraw, Amount: opts.Amount, Iterations: opts.Iterations}.Run)
		}
		err := b.Wait()

		balance := acct.Balance()
		report.Balances = append(report.Balances, balance)
		if obs != nil {
			obs.RoundComplete(ctx, round, balance, time.Since(start))
		}
		if err != nil {
			err = fmt.Errorf("round %d: %w", round, err)
			if obs != nil {
				obs.RunFinished(ctx, err)
			}
			return report, err
		}
	}
	if obs != nil {
		obs.RunFinished(ctx, nil)
	}
	return report, nil
}
