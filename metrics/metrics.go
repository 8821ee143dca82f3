// Package metrics exposes relaxation progress as Prometheus metrics.
//
// A Collector owns its own registry (nothing is registered globally) and
// implements relax.Observer, so it can be passed straight to relax.WithObserver.
package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/graphrelax/relax"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "graphrelax"

// Collector holds the Prometheus metrics of one or more relaxation runs.
type Collector struct {
	registry *prometheus.Registry

	Iterations  prometheus.Counter
	Runs        prometheus.Counter
	MaxForce    prometheus.Gauge
	Stress      prometheus.Gauge
	Pairs       prometheus.Gauge
	Components  prometheus.Gauge
	RunDuration prometheus.Histogram

	mu   sync.Mutex
	last relax.IterationStats
}

var _ relax.Observer = (*Collector)(nil)

// NewCollector creates a Collector whose metrics live under namespace
// (DefaultNamespace when empty) in a private registry.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Total number of Euler steps performed",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of completed relaxations",
		}),
		MaxForce: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_force",
			Help:      "Largest per-vertex force norm of the latest step",
		}),
		Stress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stress",
			Help:      "Sum of squared separation errors of the latest step",
		}),
		Pairs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interacting_pairs",
			Help:      "Number of interacting pairs in the latest run",
		}),
		Components: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "components",
			Help:      "Number of connected components in the latest run",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the iteration loop",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}

	registry.MustRegister(
		c.Iterations,
		c.Runs,
		c.MaxForce,
		c.Stress,
		c.Pairs,
		c.Components,
		c.RunDuration,
	)

	return c
}

// Registry returns the private registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveIteration implements relax.Observer.
func (c *Collector) ObserveIteration(s relax.IterationStats) {
	c.Iterations.Inc()
	c.MaxForce.Set(s.MaxForce)
	c.Stress.Set(s.Stress)

	c.mu.Lock()
	c.last = s
	c.mu.Unlock()
}

// ObserveRun implements relax.Observer.
func (c *Collector) ObserveRun(s relax.RunStats) {
	c.Runs.Inc()
	c.Pairs.Set(float64(s.Pairs))
	c.Components.Set(float64(s.Components))
	c.RunDuration.Observe(s.Elapsed.Seconds())
}

// Last returns the most recent iteration statistics.
func (c *Collector) Last() relax.IterationStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// WriteText writes every metric of the registry in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
