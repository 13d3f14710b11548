package prom

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/NetPo4ki/go-contend/account"
	"github.com/NetPo4ki/go-contend/harness"
)

var _ harness.Observer = (*Metrics)(nil)

func TestRegister(t *testing.T) {
	t.Parallel()
	m := New()
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.Register(reg); err == nil {
		t.Fatal("re-registering the same collectors should fail")
	}
}

func TestObserveRun(t *testing.T) {
	t.Parallel()
	m := New()
	if err := m.Register(prometheus.NewRegistry()); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := harness.Run(context.Background(), account.NewLocked(),
		harness.WithRounds(2),
		harness.WithWorkersPerSide(2),
		harness.WithIterations(10),
		harness.WithObserver(m),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := testutil.ToFloat64(m.workersStarted); got != 8 {
		t.Fatalf("workers started = %v, want 8", got)
	}
	if got := testutil.ToFloat64(m.workersFinished); got != 8 {
		t.Fatalf("workers finished = %v, want 8", got)
	}
	if got := testutil.ToFloat64(m.workersErrored); got != 0 {
		t.Fatalf("workers errored = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.roundsComplete); got != 2 {
		t.Fatalf("rounds complete = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.lastBalance); got != 0 {
		t.Fatalf("last balance = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.runsStarted); got != 1 {
		t.Fatalf("runs started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.runsFinished.WithLabelValues("ok")); got != 1 {
		t.Fatalf("runs finished ok = %v, want 1", got)
	}
}
