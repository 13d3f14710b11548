package harness

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Batch spawns a fixed set of workers and joins on all of them. Unlike
// a fail-fast group, Wait always drains every worker, faulted or not,
// and returns every collected failure joined into one error. A silent
// drop of the second failure hides real defects, so nothing is dropped.
type Batch struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	errs   []error

	opts Options
	obs  Observer
	lim  Limiter
}

// NewBatch creates a batch bound to parent. Only the Observer,
// SpawnLimit, and PanicAsError options are consulted.
func NewBatch(parent context.Context, optFns ...Option) *Batch {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return newBatch(parent, opts)
}

func newBatch(parent context.Context, opts Options) *Batch {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	b := &Batch{ctx: ctx, cancel: cancel, opts: opts, obs: opts.Observer}
	if opts.SpawnLimit > 0 {
		b.lim = newSemaphoreLimiter(opts.SpawnLimit)
	}
	return b
}

// Context returns the batch's context. It is canceled by Cancel; the
// harness uses it to layer an external timeout over the join.
func (b *Batch) Context() context.Context { return b.ctx }

// Go spawns fn on its own goroutine. A non-nil return is collected; a
// panic is recovered and collected as an error unless PanicAsError is
// off, in which case it is re-raised after being counted.
func (b *Batch) Go(fn func(ctx context.Context) error) {
	if fn == nil {
		return
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if b.lim != nil {
			if err := b.lim.Acquire(b.ctx); err != nil {
				b.collect(err)
				return
			}
			defer b.lim.Release()
		}
		defer func() {
			if r := recover(); r != nil {
				if b.opts.PanicAsError {
					err := fmt.Errorf("worker panic: %v", r)
					b.collect(err)
					if b.obs != nil {
						b.obs.WorkerFinished(b.ctx, 0, err, true)
					}
				} else {
					if b.obs != nil {
						b.obs.WorkerFinished(b.ctx, 0, nil, true)
					}
					panic(r)
				}
			}
		}()

		var start time.Time
		if b.obs != nil {
			start = time.Now()
			b.obs.WorkerStarted(b.ctx)
		}

		err := fn(b.ctx)
		if err != nil {
			b.collect(err)
		}
		if b.obs != nil {
			b.obs.WorkerFinished(b.ctx, time.Since(start), err, false)
		}
	}()
}

// Cancel cancels the batch's context, recording err as a failure. Wait
// still blocks until every spawned worker has returned.
func (b *Batch) Cancel(err error) {
	b.collect(err)
	b.cancel()
}

// Wait blocks until all spawned workers have completed or failed, then
// returns nil or the join of every collected failure.
func (b *Batch) Wait() error {
	b.wg.Wait()
	b.cancel()
	b.mu.Lock()
	defer b.mu.Unlock()
	return errors.Join(b.errs...)
}

func (b *Batch) collect(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	b.errs = append(b.errs, err)
	b.mu.Unlock()
}
