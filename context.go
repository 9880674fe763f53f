package pullstreams

import "context"

// contextErr returns nil while ctx is live, and the cause of its cancelation afterwards.
func contextErr(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}

	return context.Cause(ctx)
}
