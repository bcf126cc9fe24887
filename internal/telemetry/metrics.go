package telemetry

import (
	"fmt"

	"fastabench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects per-iteration metrics for one benchmark scenario on a
// private registry.
type Recorder struct {
	registry   *prometheus.Registry
	iterations prometheus.Counter
	duration   prometheus.Histogram
	records    prometheus.Gauge
}

// NewRecorder creates a Recorder whose series carry a scenario label.
func NewRecorder(scenario string) *Recorder {
	labels := prometheus.Labels{"scenario": scenario}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "fastabench_iterations_total",
			Help:        "Number of completed timed iterations.",
			ConstLabels: labels,
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "fastabench_iteration_duration_seconds",
			Help:        "Wall-clock time of the timed operation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "fastabench_records_parsed",
			Help:        "Records collected by the most recent iteration.",
			ConstLabels: labels,
		}),
	}
	r.registry.MustRegister(r.iterations, r.duration, r.records)
	return r
}

// Observe records one iteration. Its signature matches benchmark.Options.Observer.
func (r *Recorder) Observe(iteration int, d benchmark.Duration) {
	r.iterations.Inc()
	r.duration.Observe(d.Std().Seconds())
	LogDebug("Iteration finished", "iteration", iteration, "elapsed", benchmark.FormatDuration(d))
}

// SetRecords stores the record count of the latest iteration.
func (r *Recorder) SetRecords(n int) {
	r.records.Set(float64(n))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current metrics in the text exposition format,
// as consumed by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
