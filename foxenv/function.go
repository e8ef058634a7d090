package foxenv

import (
	"fmt"
	"slices"
)

type Function struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,flow"`
	Body   string   `yaml:"body"`
}

func (f Function) Arity() int {
	return len(f.Params)
}

func (f Function) clone() Function {
	f.Params = slices.Clone(f.Params)
	return f
}

func functionName(f Function) string {
	return f.Name
}

// DefineFunction registers a function once. Redefining a name is rejected with ErrDuplicateName.
// The parameter list fixes the arity permanently.
func (e *Env) DefineFunction(name string, params []string, body string) error {
	e.lock()
	defer e.mu.Unlock()
	if err := e.checkName(StoreFunction, name); err != nil {
		return err
	}
	seen := make(map[string]bool, len(params))
	for _, param := range params {
		if err := e.checkName(StoreFunction, param); err != nil {
			return fmt.Errorf("function %s: parameter: %w", name, err)
		}
		if seen[param] {
			return fmt.Errorf("function %s: parameter: %w", name, invalidName(StoreFunction, param, "repeated"))
		}
		seen[param] = true
	}
	if !e.funcs.insert(Function{
		Name:   name,
		Params: slices.Clone(params),
		Body:   body,
	}) {
		return nameError(ErrDuplicateName, StoreFunction, name)
	}
	return nil
}

func (e *Env) LookupFunction(name string) (Function, error) {
	e.lock()
	defer e.mu.Unlock()
	f, ok := e.funcs.get(name)
	if !ok {
		return Function{}, nameError(ErrNotFound, StoreFunction, name)
	}
	return f.clone(), nil
}

// Functions returns copies of all functions in definition order.
func (e *Env) Functions() []Function {
	e.lock()
	defer e.mu.Unlock()
	ret := make([]Function, 0, e.funcs.len())
	e.funcs.each(func(f Function) {
		ret = append(ret, f.clone())
	})
	return ret
}
