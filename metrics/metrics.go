// Package metrics exports route search statistics as Prometheus metrics.
//
// A Collector registers its metrics once and is then shared by every search:
//
//	c := metrics.NewCollector(metrics.WithRegistry(reg))
//	res, err := astar.Search[int](m, from, to, metrics.Options[int](c)...)
//	metrics.Record(c, res, err)
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/routeplan/astar"
)

// Outcome label values.
const (
	OutcomeFound          = "found"
	OutcomeNoPath         = "no_path"
	OutcomeInvalidNode    = "invalid_node"
	OutcomeExpansionLimit = "expansion_limit"
	OutcomeError          = "error"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "routeplan").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// ExpansionBuckets are the histogram buckets for expanded node counts.
	ExpansionBuckets []float64

	// CostBuckets are the histogram buckets for route costs.
	CostBuckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithCostBuckets sets the route cost histogram buckets.
func WithCostBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.CostBuckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:        "routeplan",
		ExpansionBuckets: prometheus.ExponentialBuckets(1, 4, 8),
		CostBuckets:      prometheus.ExponentialBuckets(1, 2, 12),
		Registry:         prometheus.DefaultRegisterer,
	}
}

// Collector holds the search metrics.
type Collector struct {
	searches   *prometheus.CounterVec
	expansions prometheus.Histogram
	cost       prometheus.Histogram
	expanded   prometheus.Counter
	enqueued   prometheus.Counter
}

// NewCollector creates and registers the search metrics.
// Registering twice on the same registry panics, as promauto does.
func NewCollector(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "searches_total",
			Help:        "Total number of route searches by outcome",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),

		expansions: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "search_expansions",
			Help:        "Nodes expanded per successful search",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.ExpansionBuckets,
		}),

		cost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "route_cost",
			Help:        "Cost of routes found",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.CostBuckets,
		}),

		expanded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "expanded_nodes_total",
			Help:        "Total number of nodes expanded across all searches",
			ConstLabels: cfg.ConstLabels,
		}),

		enqueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "frontier_pushes_total",
			Help:        "Total number of frontier insertions across all searches",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Options returns search hooks feeding the node counters of c.
func Options[N comparable](c *Collector) []astar.Option[N] {
	return []astar.Option[N]{
		astar.WithOnExpand(func(N, float64) { c.expanded.Inc() }),
		astar.WithOnEnqueue(func(N, float64) { c.enqueued.Inc() }),
	}
}

// Record counts one finished search. res may be nil when err is set.
func Record[N comparable](c *Collector, res *astar.Result[N], err error) {
	outcome := Outcome(err)
	c.searches.WithLabelValues(outcome).Inc()
	if err != nil || res == nil {
		return
	}
	c.expansions.Observe(float64(res.Expanded))
	c.cost.Observe(res.Cost)
}

// Outcome maps a search error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, astar.ErrNoPathFound):
		return OutcomeNoPath
	case errors.Is(err, astar.ErrInvalidNode):
		return OutcomeInvalidNode
	case errors.Is(err, astar.ErrExpansionLimit):
		return OutcomeExpansionLimit
	default:
		return OutcomeError
	}
}
