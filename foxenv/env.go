package foxenv

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Env is the symbol table of a running script: one store of variables and one of functions.
// All methods are safe for concurrent use. Callers only receive copies of stored records.
type Env struct {
	mu              sync.Mutex
	vars            *table[Variable]
	funcs           *table[Function]
	initialCapacity int
	maxNameLength   int
	handlers        []ErrorHandler
	evaluator       Evaluator
	warn            func(ctx context.Context, msg string, args ...any)
	destroyed       bool
}

func New(options ...Option) *Env {
	e := &Env{
		initialCapacity: DefaultInitialCapacity,
		maxNameLength:   DefaultMaxNameLength,
		warn:            func(context.Context, string, ...any) {},
	}
	for _, option := range options {
		option(e)
	}
	e.vars = newTable(e.initialCapacity, variableName)
	e.funcs = newTable(e.initialCapacity, functionName)
	return e
}

// Destroy releases all bindings. Using the environment afterwards panics.
func (e *Env) Destroy() {
	e.lock()
	defer e.mu.Unlock()
	e.vars = nil
	e.funcs = nil
	e.handlers = nil
	e.evaluator = nil
	e.destroyed = true
}

func (e *Env) lock() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		panic("foxenv: environment used after Destroy")
	}
}

func (e *Env) MaxNameLength() int {
	e.lock()
	defer e.mu.Unlock()
	return e.maxNameLength
}

func (e *Env) checkName(store, name string) error {
	if name == "" {
		return invalidName(store, name, "empty")
	}
	if n := utf8.RuneCountInString(name); n > e.maxNameLength {
		return invalidName(store, name, fmt.Sprintf("longer than %d", e.maxNameLength))
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return invalidName(store, name, "contains space")
	}
	return nil
}
