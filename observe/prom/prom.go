// Package prom provides a Prometheus-backed harness observer. It
// implements the harness.Observer interface without importing the
// harness package.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics observes harness runs through Prometheus collectors. The zero
// value is not usable; construct with New and attach the collectors to
// a registry with Register.
type Metrics struct {
	runsStarted     prometheus.Counter
	runsFinished    *prometheus.CounterVec
	roundsComplete  prometheus.Counter
	lastBalance     prometheus.Gauge
	roundWait       prometheus.Histogram
	workersStarted  prometheus.Counter
	workersFinished prometheus.Counter
	workersErrored  prometheus.Counter
	workersPanicked prometheus.Counter
}

// New returns a Metrics observer with unregistered collectors.
func New() *Metrics {
	return &Metrics{
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "harness",
			Name: "runs_started_total", Help: "Harness runs started.",
		}),
		runsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "harness",
			Name: "runs_finished_total", Help: "Harness runs finished, by result.",
		}, []string{"result"}),
		roundsComplete: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "harness",
			Name: "rounds_complete_total", Help: "Rounds fully drained by the barrier.",
		}),
		lastBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "contend", Subsystem: "harness",
			Name: "last_balance", Help: "Balance observed after the most recent round.",
		}),
		roundWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contend", Subsystem: "harness",
			Name:    "round_wait_seconds",
			Help:    "Time from spawning a round's workers to barrier return.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		workersStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "worker",
			Name: "started_total", Help: "Workers started.",
		}),
		workersFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "worker",
			Name: "finished_total", Help: "Workers finished, including faulted ones.",
		}),
		workersErrored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "worker",
			Name: "errored_total", Help: "Workers that finished with an error.",
		}),
		workersPanicked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contend", Subsystem: "worker",
			Name: "panicked_total", Help: "Workers that panicked.",
		}),
	}
}

// Register attaches all collectors to r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	cs := []prometheus.Collector{
		m.runsStarted, m.runsFinished, m.roundsComplete, m.lastBalance,
		m.roundWait, m.workersStarted, m.workersFinished,
		m.workersErrored, m.workersPanicked,
	}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RunStarted records a harness run starting.
func (m *Metrics) RunStarted(_ context.Context) {
	m.runsStarted.Inc()
}

// RunFinished records a run's outcome.
func (m *Metrics) RunFinished(_ context.Context, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.runsFinished.WithLabelValues(result).Inc()
}

// RoundComplete records a barrier return: the observed balance and the
// time the orchestrator spent in the round.
func (m *Metrics) RoundComplete(_ context.Context, _ int, balance int64, wait time.Duration) {
	m.roundsComplete.Inc()
	m.lastBalance.Set(float64(balance))
	m.roundWait.Observe(wait.Seconds())
}

// WorkerStarted increments the started counter.
func (m *Metrics) WorkerStarted(_ context.Context) {
	m.workersStarted.Inc()
}

// WorkerFinished increments the finished counter and tracks errors and
// panics.
func (m *Metrics) WorkerFinished(_ context.Context, _ time.Duration, err error, panicked bool) {
	m.workersFinished.Inc()
	if err != nil {
		m.workersErrored.Inc()
	}
	if panicked {
		m.workersPanicked.Inc()
	}
}
