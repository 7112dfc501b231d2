// Package metrics records what a trusted setup run did: how many runs
// started and failed, how long generation and precomputation took and how
// large the setup was. Values live in a Registry and are read back as a
// Snapshot, which WriteText renders for Prometheus.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Counter only goes up.
type Counter struct {
	n atomic.Int64
}

// Inc adds one.
func (c *Counter) Inc() { c.n.Add(1) }

// Value returns the current count.
func (c *Counter) Value() int64 { return c.n.Load() }

// Gauge holds the last value it was set to.
type Gauge struct {
	v atomic.Int64
}

// Set stores v.
func (g *Gauge) Set(v int64) { g.v.Store(v) }

// Value returns the stored value.
func (g *Gauge) Value() int64 { return g.v.Load() }

// HistogramSnapshot summarises the observations of a Histogram. Min, Max
// and Mean are zero while Count is zero.
type HistogramSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Histogram summarises observed values by count, sum and extremes.
type Histogram struct {
	mu       sync.Mutex
	count    int64
	sum      float64
	min, max float64
}

func newHistogram() *Histogram {
	return &Histogram{min: math.MaxFloat64, max: -math.MaxFloat64}
}

// Observe records v.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += v
	h.min = min(h.min, v)
	h.max = max(h.max, v)
}

// Snapshot returns a consistent summary of the observations so far.
func (h *Histogram) Snapshot() HistogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return HistogramSnapshot{}
	}
	return HistogramSnapshot{
		Count: h.count,
		Sum:   h.sum,
		Min:   h.min,
		Max:   h.max,
		Mean:  h.sum / float64(h.count),
	}
}

// Timer measures one operation and records its milliseconds into a
// Histogram when stopped. A nil histogram only measures.
type Timer struct {
	start time.Time
	hist  *Histogram
}

// NewTimer starts timing into h.
func NewTimer(h *Histogram) *Timer {
	return &Timer{start: time.Now(), hist: h}
}

// Stop records and returns the elapsed time.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	if t.hist != nil {
		t.hist.Observe(float64(d.Milliseconds()))
	}
	return d
}
