package metrics

import "sync"

// Registry maps names to metrics. Lookups create the metric on first use,
// so the same name always yields the same instance. Counters, gauges and
// histograms have separate namespaces.
type Registry struct {
	mu         sync.RWMutex
	counters   map[string]*Counter
	gauges     map[string]*Gauge
	histograms map[string]*Histogram
}

// DefaultRegistry is the registry the kzgsetup command records into.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]*Counter),
		gauges:     make(map[string]*Gauge),
		histograms: make(map[string]*Histogram),
	}
}

// getOrCreate returns m[name], creating it with mk under the write lock when
// absent.
func getOrCreate[T any](mu *sync.RWMutex, m map[string]*T, name string, mk func() *T) *T {
	mu.RLock()
	v, ok := m[name]
	mu.RUnlock()
	if ok {
		return v
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok = m[name]; ok {
		return v
	}
	v = mk()
	m[name] = v
	return v
}

// Counter returns the counter called name.
func (r *Registry) Counter(name string) *Counter {
	return getOrCreate(&r.mu, r.counters, name, func() *Counter { return new(Counter) })
}

// Gauge returns the gauge called name.
func (r *Registry) Gauge(name string) *Gauge {
	return getOrCreate(&r.mu, r.gauges, name, func() *Gauge { return new(Gauge) })
}

// Histogram returns the histogram called name.
func (r *Registry) Histogram(name string) *Histogram {
	return getOrCreate(&r.mu, r.histograms, name, newHistogram)
}

// Snapshot is a point-in-time copy of every metric in a Registry.
type Snapshot struct {
	Counters   map[string]int64
	Gauges     map[string]int64
	Histograms map[string]HistogramSnapshot
}

// Snapshot copies the current value of every registered metric.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Counters:   make(map[string]int64, len(r.counters)),
		Gauges:     make(map[string]int64, len(r.gauges)),
		Histograms: make(map[string]HistogramSnapshot, len(r.histograms)),
	}
	for name, c := range r.counters {
		snap.Counters[name] = c.Value()
	}
	for name, g := range r.gauges {
		snap.Gauges[name] = g.Value()
	}
	for name, h := range r.histograms {
		snap.Histograms[name] = h.Snapshot()
	}
	return snap
}
