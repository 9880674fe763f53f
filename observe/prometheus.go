package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/deadlyengineer/pullstreams"
)

// Metrics holds the Prometheus collectors updated by PrometheusHooks.
// Every collector is labeled with the observed stream's name.
type Metrics struct {
	Items       *prometheus.CounterVec
	Errors      *prometheus.CounterVec
	Completions *prometheus.CounterVec
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	namespace string
	subsystem string
}

// WithNamespace sets the namespace of the metric names. The default is "pullstreams".
func WithNamespace(namespace string) MetricsOption {
	return func(c *metricsConfig) {
		c.namespace = namespace
	}
}

// WithSubsystem sets the subsystem of the metric names. The default is "stream".
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *metricsConfig) {
		c.subsystem = subsystem
	}
}

// NewMetrics creates the collectors and registers them with reg.
// If reg is nil, the collectors are not registered.
func NewMetrics(reg prometheus.Registerer, opts ...MetricsOption) *Metrics {
	cfg := metricsConfig{
		namespace: "pullstreams",
		subsystem: "stream",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(reg)

	return &Metrics{
		Items: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.namespace,
				Subsystem: cfg.subsystem,
				Name:      "items_total",
				Help:      "Total number of elements pulled through the stream",
			},
			[]string{"stream"},
		),

		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.namespace,
				Subsystem: cfg.subsystem,
				Name:      "errors_total",
				Help:      "Total number of failed pulls",
			},
			[]string{"stream"},
		),

		Completions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.namespace,
				Subsystem: cfg.subsystem,
				Name:      "completions_total",
				Help:      "Total number of streams that were exhausted, terminated, or failed",
			},
			[]string{"stream"},
		),
	}
}

// PrometheusHooks returns hooks that update m for the stream called name.
func PrometheusHooks[T any](m *Metrics, name string) pullstreams.Hooks[T] {
	items := m.Items.WithLabelValues(name)
	errs := m.Errors.WithLabelValues(name)
	completions := m.Completions.WithLabelValues(name)

	return pullstreams.Hooks[T]{
		OnValue: func(T) {
			items.Inc()
		},
		OnError: func(error) {
			errs.Inc()
		},
		OnComplete: func() {
			completions.Inc()
		},
	}
}
