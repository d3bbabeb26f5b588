package montecarlopi

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "montecarlopi"

// Metrics collects per-estimate counters on a private registry. It never
// serves anything; WriteTextfile dumps the current values to disk.
type Metrics struct {
	registry  *prometheus.Registry
	estimates *prometheus.CounterVec
	sampled   *prometheus.CounterVec
	inside    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	workers   prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "estimates_total",
			Help:      "Completed pi estimates",
		}, []string{"mode"}),
		sampled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "points_sampled_total",
			Help:      "Points drawn across all estimates",
		}, []string{"mode"}),
		inside: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "points_inside_total",
			Help:      "Points that fell inside the unit circle",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "estimate_duration_seconds",
			Help:      "Wall time of one estimate",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "workers",
			Help:      "Workers used by the last estimate",
		}),
	}
	m.registry.MustRegister(m.estimates, m.sampled, m.inside, m.duration, m.workers)
	return m
}

// Registry exposes the underlying registry, e.g. for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

func (m *Metrics) observe(mode Mode, count PointCount, workers int, d time.Duration) {
	if m == nil {
		return
	}
	label := string(mode)
	m.estimates.WithLabelValues(label).Inc()
	m.sampled.WithLabelValues(label).Add(float64(count.Total))
	m.inside.WithLabelValues(label).Add(float64(count.Inside))
	m.duration.WithLabelValues(label).Observe(d.Seconds())
	m.workers.Set(float64(workers))
}
