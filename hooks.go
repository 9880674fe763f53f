package pullstreams

import "context"

// Hooks holds typed observation callbacks for a stream.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously during pulls, so they should be fast.
type Hooks[T any] struct {
	OnStart    func()      // First pull
	OnValue    func(T)     // Element produced
	OnError    func(error) // Pull failed
	OnComplete func()      // Stream exhausted, terminated, or failed; called at most once
}

// CombineHooks returns hooks that invoke every given hook set, in order.
func CombineHooks[T any](hooks ...Hooks[T]) Hooks[T] {
	return Hooks[T]{
		OnStart: func() {
			for _, h := range hooks {
				if h.OnStart != nil {
					h.OnStart()
				}
			}
		},
		OnValue: func(elem T) {
			for _, h := range hooks {
				if h.OnValue != nil {
					h.OnValue(elem)
				}
			}
		},
		OnError: func(err error) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(err)
				}
			}
		},
		OnComplete: func() {
			for _, h := range hooks {
				if h.OnComplete != nil {
					h.OnComplete()
				}
			}
		},
	}
}

// Observe returns a stream that produces the same elements as s, invoking hooks as elements pass through.
func Observe[T any](s *Stream[T], hooks Hooks[T]) *Stream[T] {
	return New[T](&observeStage[T]{
		stage: stage[T, T]{up: s},
		hooks: hooks,
	})
}

type observeStage[T any] struct {
	stage[T, T]

	hooks     Hooks[T]
	started   bool
	completed bool
}

// Next implements Source.
func (o *observeStage[T]) Next(ctx context.Context) (Result[T], error) {
	if !o.started {
		o.started = true

		if o.hooks.OnStart != nil {
			o.hooks.OnStart()
		}
	}

	elem, ok, err := o.pull(ctx)
	if err != nil {
		if o.hooks.OnError != nil {
			o.hooks.OnError(err)
		}

		o.complete()

		return Result[T]{}, err
	}

	if !ok {
		o.complete()
		return o.finish()
	}

	if o.hooks.OnValue != nil {
		o.hooks.OnValue(elem)
	}

	return Item(elem), nil
}

// Return implements Returner.
func (o *observeStage[T]) Return(ctx context.Context, value T) (Result[T], error) {
	defer o.complete()
	return o.stage.Return(ctx, value)
}

// Throw implements Thrower.
func (o *observeStage[T]) Throw(ctx context.Context, err error) (Result[T], error) {
	defer o.complete()
	return o.stage.Throw(ctx, err)
}

func (o *observeStage[T]) complete() {
	if o.completed {
		return
	}

	o.completed = true

	if o.hooks.OnComplete != nil {
		o.hooks.OnComplete()
	}
}
