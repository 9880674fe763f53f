package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/deadlyengineer/pullstreams"
)

// Instruments holds the OpenTelemetry counters updated by OTelHooks.
type Instruments struct {
	Items       metric.Int64Counter
	Errors      metric.Int64Counter
	Completions metric.Int64Counter
}

// NewInstruments creates the counters using meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	items, err := meter.Int64Counter("pullstreams.items",
		metric.WithDescription("count of elements pulled through the stream"))
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("pullstreams.errors",
		metric.WithDescription("count of failed pulls"))
	if err != nil {
		return nil, err
	}

	completions, err := meter.Int64Counter("pullstreams.completions",
		metric.WithDescription("count of streams that were exhausted, terminated, or failed"))
	if err != nil {
		return nil, err
	}

	return &Instruments{
		Items:       items,
		Errors:      errs,
		Completions: completions,
	}, nil
}

// OTelHooks returns hooks that update inst for the stream called name.
// Measurements are recorded with ctx.
func OTelHooks[T any](ctx context.Context, inst *Instruments, name string) pullstreams.Hooks[T] {
	attrs := metric.WithAttributes(attribute.String("stream", name))

	return pullstreams.Hooks[T]{
		OnValue: func(T) {
			inst.Items.Add(ctx, 1, attrs)
		},
		OnError: func(error) {
			inst.Errors.Add(ctx, 1, attrs)
		},
		OnComplete: func() {
			inst.Completions.Add(ctx, 1, attrs)
		},
	}
}
