package foxenv

import "context"

type Variable struct {
	Name    string `yaml:"name"`
	Value   int    `yaml:"value"`
	Mutable bool   `yaml:"mutable"`
}

func variableName(v Variable) string {
	return v.Name
}

// DefineVariable binds a new variable. Redefining a name is rejected with ErrDuplicateName.
func (e *Env) DefineVariable(name string, value int, mutable bool) error {
	e.lock()
	defer e.mu.Unlock()
	if err := e.checkName(StoreVariable, name); err != nil {
		return err
	}
	if !e.vars.insert(Variable{
		Name:    name,
		Value:   value,
		Mutable: mutable,
	}) {
		return nameError(ErrDuplicateName, StoreVariable, name)
	}
	return nil
}

func (e *Env) LookupVariable(name string) (Variable, error) {
	e.lock()
	defer e.mu.Unlock()
	v, ok := e.vars.get(name)
	if !ok {
		return Variable{}, nameError(ErrNotFound, StoreVariable, name)
	}
	return v, nil
}

// UpdateVariable replaces the value of a mutable variable.
// On ErrImmutable the error handlers run after the lock is released; their failures are
// reported through the warn callback and the ErrImmutable error is returned unchanged.
func (e *Env) UpdateVariable(ctx context.Context, name string, value int) error {
	e.lock()
	var err error
	if !e.vars.update(name, func(v *Variable) {
		if !v.Mutable {
			err = nameError(ErrImmutable, StoreVariable, name)
			return
		}
		v.Value = value
	}) {
		err = nameError(ErrNotFound, StoreVariable, name)
	}
	handlers := e.handlers
	e.mu.Unlock()

	if err != nil && len(handlers) > 0 {
		if _, ok := ImmutableName(err); ok {
			e.runHandlers(ctx, handlers, err)
		}
	}
	return err
}

func (e *Env) DeleteVariable(name string) error {
	e.lock()
	defer e.mu.Unlock()
	if !e.vars.remove(name) {
		return nameError(ErrNotFound, StoreVariable, name)
	}
	return nil
}

// Variables returns copies of all variables in definition order.
func (e *Env) Variables() []Variable {
	e.lock()
	defer e.mu.Unlock()
	ret := make([]Variable, 0, e.vars.len())
	e.vars.each(func(v Variable) {
		ret = append(ret, v)
	})
	return ret
}

func (e *Env) runHandlers(ctx context.Context, handlers []ErrorHandler, err error) {
	for _, handler := range handlers {
		if handlerErr := handler(ctx, err); handlerErr != nil {
			e.warn(ctx, "error handler failed",
				"error", err,
				"handler_error", handlerErr,
			)
		}
	}
}
