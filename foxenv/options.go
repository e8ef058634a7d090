package foxenv

import "context"

const (
	DefaultInitialCapacity = 10
	DefaultMaxNameLength   = 50
)

// ErrorHandler receives errors that carry user visible side effects.
// Only ErrImmutable update failures are delivered.
type ErrorHandler func(ctx context.Context, err error) error

// Evaluator runs a well-formed invocation.
type Evaluator interface {
	Evaluate(ctx context.Context, env *Env, inv Invocation) (int, error)
}

type EvaluatorFunc func(ctx context.Context, env *Env, inv Invocation) (int, error)

var _ Evaluator = EvaluatorFunc(nil)

func (e EvaluatorFunc) Evaluate(ctx context.Context, env *Env, inv Invocation) (int, error) {
	return e(ctx, env, inv)
}

type Option func(*Env)

func WithInitialCapacity(n int) Option {
	return func(e *Env) {
		if n > 0 {
			e.initialCapacity = n
		}
	}
}

func WithMaxNameLength(n int) Option {
	return func(e *Env) {
		if n > 0 {
			e.maxNameLength = n
		}
	}
}

func WithErrorHandlers(handlers ...ErrorHandler) Option {
	return func(e *Env) {
		e.handlers = append(e.handlers, handlers...)
	}
}

func WithEvaluator(evaluator Evaluator) Option {
	return func(e *Env) {
		e.evaluator = evaluator
	}
}

// WithWarn sets the callback for handler failures, which never replace the original error.
func WithWarn(fn func(ctx context.Context, msg string, args ...any)) Option {
	return func(e *Env) {
		e.warn = fn
	}
}
