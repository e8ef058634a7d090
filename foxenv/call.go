package foxenv

import (
	"context"
	"fmt"
)

// Invocation is a call that passed validation.
// Locals binds each parameter name to its argument and is owned by the receiver.
type Invocation struct {
	Function Function
	Args     []int
	Locals   map[string]int
}

// Call validates that name is a registered function and that args match its arity.
// The body is not executed.
func (e *Env) Call(name string, args []int) (inv Invocation, err error) {
	e.lock()
	defer e.mu.Unlock()
	f, ok := e.funcs.get(name)
	if !ok {
		return inv, nameError(ErrNotFound, StoreFunction, name)
	}
	if len(args) != f.Arity() {
		return inv, &ArityError{
			Name: name,
			Want: f.Arity(),
			Got:  len(args),
		}
	}
	inv.Function = f.clone()
	inv.Args = make([]int, len(args))
	copy(inv.Args, args)
	inv.Locals = make(map[string]int, len(args))
	for i, param := range f.Params {
		inv.Locals[param] = args[i]
	}
	return inv, nil
}

// Invoke validates the call and hands it to the evaluator.
func (e *Env) Invoke(ctx context.Context, name string, args []int) (int, error) {
	inv, err := e.Call(name, args)
	if err != nil {
		return 0, err
	}
	e.lock()
	evaluator := e.evaluator
	e.mu.Unlock()
	if evaluator == nil {
		return 0, fmt.Errorf("function %s: %w", name, ErrNoEvaluator)
	}
	ret, err := evaluator.Evaluate(ctx, e, inv)
	if err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", name, err)
	}
	return ret, nil
}

func (e *Env) HasEvaluator() bool {
	e.lock()
	defer e.mu.Unlock()
	return e.evaluator != nil
}
