// Package observe provides pullstreams.Hooks that report stream activity to Prometheus, OpenTelemetry
// and log/slog.
//
// Hooks are attached to a stream with pullstreams.Observe:
//
//	m := observe.NewMetrics(prometheus.DefaultRegisterer)
//	ints = pullstreams.Observe(ints, observe.PrometheusHooks[int](m, "ints"))
package observe
