package foxenv

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrImmutable     = errors.New("immutable")
	ErrArityMismatch = errors.New("arity mismatch")
	ErrDuplicateName = errors.New("duplicate name")
	ErrInvalidName   = errors.New("invalid name")
	ErrNoEvaluator   = errors.New("no evaluator")
)

const (
	StoreVariable = "variable"
	StoreFunction = "function"
)

type NameError struct {
	Kind   error
	Store  string
	Name   string
	Reason string
}

func (n *NameError) Error() string {
	if n.Reason != "" {
		return fmt.Sprintf("%s %q: %s: %s", n.Store, n.Name, n.Kind, n.Reason)
	}
	return fmt.Sprintf("%s %s: %s", n.Store, n.Name, n.Kind)
}

func (n *NameError) Unwrap() error {
	return n.Kind
}

func nameError(kind error, store, name string) error {
	return &NameError{
		Kind:  kind,
		Store: store,
		Name:  name,
	}
}

func invalidName(store, name, reason string) error {
	return &NameError{
		Kind:   ErrInvalidName,
		Store:  store,
		Name:   name,
		Reason: reason,
	}
}

type ArityError struct {
	Name string
	Want int
	Got  int
}

func (a *ArityError) Error() string {
	return fmt.Sprintf("function %s: %s: want %d arguments, got %d", a.Name, ErrArityMismatch, a.Want, a.Got)
}

func (a *ArityError) Unwrap() error {
	return ErrArityMismatch
}

// ImmutableName returns the variable name carried by an ErrImmutable error.
func ImmutableName(err error) (string, bool) {
	var nameErr *NameError
	if !errors.As(err, &nameErr) {
		return "", false
	}
	if nameErr.Kind != ErrImmutable {
		return "", false
	}
	return nameErr.Name, true
}
