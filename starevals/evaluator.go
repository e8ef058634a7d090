package starevals

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/reusee/fox/foxenv"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	ErrNotInt         = errors.New("result is not an int")
	ErrRecursionDepth = errors.New("call depth exceeded")
)

const DefaultMaxDepth = 64

type depthKey struct{}

// Evaluator evaluates a function body as a single starlark expression.
// Parameters shadow environment variables of the same name; both are read only.
// Functions of the environment are callable from the body through Env.Invoke.
type Evaluator struct {
	MaxSteps uint64
	MaxDepth int
}

var _ foxenv.Evaluator = Evaluator{}

func (e Evaluator) Evaluate(ctx context.Context, env *foxenv.Env, inv foxenv.Invocation) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	maxDepth := e.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	depth, _ := ctx.Value(depthKey{}).(int)
	if depth >= maxDepth {
		return 0, fmt.Errorf("%w: %d", ErrRecursionDepth, depth)
	}
	ctx = context.WithValue(ctx, depthKey{}, depth+1)

	thread := &starlark.Thread{
		Name: inv.Function.Name,
	}
	if e.MaxSteps > 0 {
		thread.SetMaxExecutionSteps(e.MaxSteps)
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	globals := make(starlark.StringDict)
	for _, v := range env.Variables() {
		globals[v.Name] = starlark.MakeInt(v.Value)
	}
	for _, f := range env.Functions() {
		if _, ok := globals[f.Name]; ok {
			continue
		}
		globals[f.Name] = e.makeBuiltin(ctx, env, f.Name)
	}
	for name, value := range inv.Locals {
		globals[name] = starlark.MakeInt(value)
	}

	value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, inv.Function.Name, inv.Function.Body, globals)
	if err != nil {
		return 0, err
	}
	return toInt(value)
}

func (e Evaluator) makeBuiltin(ctx context.Context, env *foxenv.Env, name string) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: keyword arguments not supported", name)
		}
		ints := make([]int, 0, len(args))
		for _, arg := range args {
			i, err := toInt(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			ints = append(ints, i)
		}
		ret, err := env.Invoke(ctx, name, ints)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(ret), nil
	})
}

func toInt(value starlark.Value) (int, error) {
	switch value := value.(type) {
	case starlark.Int:
		i, ok := value.Int64()
		if !ok || i > math.MaxInt || i < math.MinInt {
			return 0, fmt.Errorf("%w: %s overflows", ErrNotInt, value)
		}
		return int(i), nil
	case starlark.Bool:
		if value {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: got %s", ErrNotInt, value.Type())
}
