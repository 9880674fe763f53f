package observe

import (
	"log/slog"

	"github.com/deadlyengineer/pullstreams"
)

// LogHooks returns hooks that log the activity of the stream called name to logger.
// Elements are logged at debug level, failures at error level.
func LogHooks[T any](logger *slog.Logger, name string) pullstreams.Hooks[T] {
	logger = logger.With(slog.String("stream", name))

	count := uint64(0)

	return pullstreams.Hooks[T]{
		OnStart: func() {
			logger.Debug("stream started")
		},
		OnValue: func(elem T) {
			logger.Debug("element pulled", slog.Uint64("index", count), slog.Any("value", elem))
			count++
		},
		OnError: func(err error) {
			logger.Error("pull failed", slog.Uint64("index", count), slog.Any("error", err))
		},
		OnComplete: func() {
			logger.Info("stream completed", slog.Uint64("elements", count))
		},
	}
}
