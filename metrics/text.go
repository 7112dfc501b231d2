package metrics

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// WriteText writes a snapshot of r to w in the Prometheus text exposition
// format. Dots in names become underscores and a non-empty namespace is
// prepended. Histograms are written as summaries with _count and _sum, plus
// _min, _max and _mean once observed. Output is sorted by name.
func WriteText(w io.Writer, r *Registry, namespace string) error {
	snap := r.Snapshot()
	bw := bufio.NewWriter(w)

	for _, name := range sortedKeys(snap.Counters) {
		pn := promName(namespace, name)
		writeHeader(bw, pn, "counter", name)
		fmt.Fprintf(bw, "%s %d\n", pn, snap.Counters[name])
	}
	for _, name := range sortedKeys(snap.Gauges) {
		pn := promName(namespace, name)
		writeHeader(bw, pn, "gauge", name)
		fmt.Fprintf(bw, "%s %d\n", pn, snap.Gauges[name])
	}
	for _, name := range sortedKeys(snap.Histograms) {
		h := snap.Histograms[name]
		pn := promName(namespace, name)
		writeHeader(bw, pn, "summary", name)
		fmt.Fprintf(bw, "%s_count %d\n", pn, h.Count)
		fmt.Fprintf(bw, "%s_sum %s\n", pn, formatFloat(h.Sum))
		if h.Count > 0 {
			fmt.Fprintf(bw, "%s_min %s\n", pn, formatFloat(h.Min))
			fmt.Fprintf(bw, "%s_max %s\n", pn, formatFloat(h.Max))
			fmt.Fprintf(bw, "%s_mean %s\n", pn, formatFloat(h.Mean))
		}
	}
	return bw.Flush()
}

func promName(namespace, name string) string {
	sanitized := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if namespace != "" {
		return namespace + "_" + sanitized
	}
	return sanitized
}

func writeHeader(w io.Writer, name, metricType, help string) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s %s\n", name, metricType)
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
