package observe

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/deadlyengineer/pullstreams"
)

var errBoom = errors.New("boom")

type failingSource struct{}

func (failingSource) Next(_ context.Context) (pullstreams.Result[int], error) {
	return pullstreams.Result[int]{}, errBoom
}

func TestPrometheusHooks(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ints := pullstreams.Observe(pullstreams.Of(1, 2, 3), PrometheusHooks[int](m, "ints"))

	is.NoErr(pullstreams.Drain(ctx, ints))

	failing := pullstreams.Observe(pullstreams.New[int](failingSource{}), PrometheusHooks[int](m, "failing"))

	_, err := pullstreams.Collect(ctx, failing)
	is.True(errors.Is(err, errBoom))

	is.Equal(testutil.ToFloat64(m.Items.WithLabelValues("ints")), 3.0)
	is.Equal(testutil.ToFloat64(m.Errors.WithLabelValues("ints")), 0.0)
	is.Equal(testutil.ToFloat64(m.Completions.WithLabelValues("ints")), 1.0)

	is.Equal(testutil.ToFloat64(m.Items.WithLabelValues("failing")), 0.0)
	is.Equal(testutil.ToFloat64(m.Errors.WithLabelValues("failing")), 1.0)
	is.Equal(testutil.ToFloat64(m.Completions.WithLabelValues("failing")), 1.0)
}

func TestNewMetrics_Options(t *testing.T) {
	is := is.New(t)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, WithNamespace("app"), WithSubsystem("orders"))

	m.Items.WithLabelValues("x").Inc()

	families, err := reg.Gather()
	is.NoErr(err)

	names := []string{}
	for _, f := range families {
		names = append(names, f.GetName())
	}

	is.Equal(names, []string{"app_orders_items_total"})
}
