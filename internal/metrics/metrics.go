// Package metrics exposes per-run Prometheus collectors. A nil *Collector
// records nothing, so callers never need to guard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "primerscan"

// Collector owns a private registry; nothing is registered globally.
type Collector struct {
	reg      *prometheus.Registry
	units    *prometheus.CounterVec
	hits     prometheus.Counter
	duration prometheus.Histogram
	tables   *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Completed primer/contig work units by status.",
		}, []string{"status"}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hits_total",
			Help:      "Primer occurrences located.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "unit_duration_seconds",
			Help:      "Wall time of one work unit.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		tables: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tables_written_total",
			Help:      "Result tables by write status.",
		}, []string{"status"}),
	}
	c.reg.MustRegister(c.units, c.hits, c.duration, c.tables)
	return c
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

// ObserveUnit records one finished work unit.
func (c *Collector) ObserveUnit(d time.Duration, hits int, ok bool) {
	if c == nil {
		return
	}
	c.units.WithLabelValues(status(ok)).Inc()
	c.hits.Add(float64(hits))
	c.duration.Observe(d.Seconds())
}

func (c *Collector) ObserveTable(ok bool) {
	if c == nil {
		return
	}
	c.tables.WithLabelValues(status(ok)).Inc()
}

// Registry exposes the gatherer for tests and exporters.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

// WriteTextfile dumps all metrics in the text exposition format, suitable
// for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, c.reg)
}
