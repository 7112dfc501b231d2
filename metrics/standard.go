package metrics

// Metric names recorded by a trusted setup run.
const (
	SetupRunsName       = "setup.runs"
	SetupFailuresName   = "setup.failures"
	SetupGenerateName   = "setup.generate_ms"
	SetupPrecomputeName = "setup.precompute_ms"
	SetupSRSPointsName  = "setup.srs_points"
)

// SetupMetrics groups the metrics a setup run records.
type SetupMetrics struct {
	// Runs counts started setup runs.
	Runs *Counter
	// Failures counts runs that returned an error.
	Failures *Counter
	// GenerateTime records trusted setup generation in milliseconds.
	GenerateTime *Histogram
	// PrecomputeTime records precomputation builds in milliseconds.
	PrecomputeTime *Histogram
	// SRSPoints is the G1 length of the last generated setup.
	SRSPoints *Gauge
}

// NewSetupMetrics registers the setup metrics in r, reusing any that exist.
func NewSetupMetrics(r *Registry) *SetupMetrics {
	return &SetupMetrics{
		Runs:           r.Counter(SetupRunsName),
		Failures:       r.Counter(SetupFailuresName),
		GenerateTime:   r.Histogram(SetupGenerateName),
		PrecomputeTime: r.Histogram(SetupPrecomputeName),
		SRSPoints:      r.Gauge(SetupSRSPointsName),
	}
}
