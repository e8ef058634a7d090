package logs

import "context"

// Warn reports a condition that must not interrupt the caller.
type Warn func(ctx context.Context, msg string, args ...any)

func (Module) Warn(
	logger Logger,
) Warn {
	return func(ctx context.Context, msg string, args ...any) {
		logger.WarnContext(ctx, msg, args...)
	}
}
