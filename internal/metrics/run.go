package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/primecount/internal/timing"
)

const namespace = "primecount"

// RunMetrics holds the Prometheus metrics of a single invocation. Each
// instance owns its registry, so nothing leaks between runs or tests.
type RunMetrics struct {
	registry *prometheus.Registry

	items    prometheus.Gauge
	workers  prometheus.Gauge
	speedup  prometheus.Gauge
	primes   *prometheus.GaugeVec
	duration *prometheus.GaugeVec
	cpu      *prometheus.GaugeVec
	chunks   prometheus.Histogram
}

// NewRunMetrics creates and registers the run metrics together with the Go
// runtime collector.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Number of integers parsed from the input.",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Size of the parallel worker pool.",
		}),
		speedup: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "speedup_ratio",
			Help:      "Sequential wall time divided by parallel wall time.",
		}),
		primes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "primes_found",
			Help:      "Primes counted by each strategy.",
		}, []string{"strategy"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time of each counting run.",
		}, []string{"strategy"}),
		cpu: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_cpu_seconds",
			Help:      "Process CPU time (user+system) consumed by each counting run.",
		}, []string{"strategy"}),
		chunks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_primes",
			Help:      "Distribution of per-chunk prime counts in the parallel run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.items, m.workers, m.speedup,
		m.primes, m.duration, m.cpu, m.chunks,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry as a gatherer.
func (m *RunMetrics) Registry() prometheus.Gatherer { return m.registry }

// SetInput records the input size and pool size.
func (m *RunMetrics) SetInput(items, workers int) {
	m.items.Set(float64(items))
	m.workers.Set(float64(workers))
}

// ObserveRun records the outcome of one strategy.
func (m *RunMetrics) ObserveRun(strategy string, count int64, meas timing.Measurement) {
	m.primes.WithLabelValues(strategy).Set(float64(count))
	m.duration.WithLabelValues(strategy).Set(meas.Wall.Seconds())
	m.cpu.WithLabelValues(strategy).Set(meas.CPU().Seconds())
}

// ObserveChunks records the per-chunk partial counts of a parallel run.
func (m *RunMetrics) ObserveChunks(partials []int64) {
	for _, p := range partials {
		m.chunks.Observe(float64(p))
	}
}

// SetSpeedup records the speedup ratio.
func (m *RunMetrics) SetSpeedup(ratio float64) {
	m.speedup.Set(ratio)
}

// WriteTextfile writes the registry in text exposition format to path,
// atomically, for collection by a node_exporter textfile collector.
func (m *RunMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
