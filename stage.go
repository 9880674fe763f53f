package pullstreams

import "context"

// stage is the lifecycle shared by all stages.
// A stage pulls elements of type In from its upstream stream and produces elements of type Out.
// Concrete stages embed it and implement Next; Return and Throw are promoted from here.
type stage[In any, Out any] struct {
	up *Stream[In]

	// started is set by the first pull. A stage that was never pulled does not terminate its upstream.
	started bool

	// exhausted is set once up has reported completion or failed. up is never pulled again afterwards.
	exhausted bool

	// finished is set once the stage reports completion on every pull.
	finished bool
}

// pull returns the next upstream element, or ok == false once the upstream is exhausted.
// An upstream error finishes the stage without terminating the upstream.
func (st *stage[In, Out]) pull(ctx context.Context) (In, bool, error) {
	var zero In

	if st.exhausted || st.finished {
		return zero, false, nil
	}

	st.started = true

	res, err := st.up.Next(ctx)
	if err != nil {
		st.exhausted = true
		st.finished = true

		return zero, false, err
	}

	if res.Done {
		st.exhausted = true
		return zero, false, nil
	}

	return res.Value, true, nil
}

// finish finishes the stage and returns a completion result.
func (st *stage[In, Out]) finish() (Result[Out], error) {
	st.finished = true
	return done[Out](), nil
}

// fail finishes the stage because of err, which is returned unchanged.
// The upstream is terminated on a best-effort basis.
func (st *stage[In, Out]) fail(ctx context.Context, err error) (Result[Out], error) {
	_ = st.stop(ctx)
	return Result[Out]{}, err
}

// stop finishes the stage and forwards early termination to the upstream,
// unless the stage had already finished, was never pulled, or the upstream is exhausted.
func (st *stage[In, Out]) stop(ctx context.Context) error {
	if st.finished {
		return nil
	}

	st.finished = true

	if !st.started || st.exhausted {
		return nil
	}

	st.exhausted = true

	var zero In
	_, err := st.up.Return(ctx, zero)

	return err
}

// Return implements Returner.
func (st *stage[In, Out]) Return(ctx context.Context, value Out) (Result[Out], error) {
	if err := st.stop(ctx); err != nil {
		return Result[Out]{}, err
	}

	return Done(value), nil
}

// Throw implements Thrower.
// The stage finishes, the upstream is terminated, and err is handed back to the caller.
func (st *stage[In, Out]) Throw(ctx context.Context, err error) (Result[Out], error) {
	if err == nil {
		err = ErrAborted
	}

	return st.fail(ctx, err)
}
