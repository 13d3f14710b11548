package harness

import (
	"context"
	"time"
)

// Observer receives lifecycle hooks from a harness run. Implementations
// must be safe for concurrent use: WorkerStarted and WorkerFinished are
// invoked from worker goroutines.
type Observer interface {
	RunStarted(ctx context.Context)
	WorkerStarted(ctx context.Context)
	WorkerFinished(ctx context.Context, dur time.Duration, err error, panicked bool)
	RoundComplete(ctx context.Context, round int, balance int64, wait time.Duration)
	RunFinished(ctx context.Context, err error)
}
