package pullstreams

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestContextErr(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	is.NoErr(contextErr(ctx))

	cancel()
	is.True(errors.Is(contextErr(ctx), context.Canceled))
}

func TestContextErr_Cause(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())

	cancel(errBoom)
	is.Equal(contextErr(ctx), errBoom)

	_, err := Of(1, 2, 3).Next(ctx)
	is.True(errors.Is(err, errBoom))

	_, err = Collect(ctx, Of(1, 2, 3))
	is.True(errors.Is(err, errBoom))
}
