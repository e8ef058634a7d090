package foxenv

import (
	"encoding/gob"
	"fmt"
	"io"
)

type State struct {
	Variables []Variable `yaml:"variables"`
	Functions []Function `yaml:"functions"`
}

// State returns a copy of both stores.
func (e *Env) State() State {
	return State{
		Variables: e.Variables(),
		Functions: e.Functions(),
	}
}

func (e *Env) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(e.State()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Restore builds a new environment from a snapshot. Every binding is defined again,
// so a snapshot that breaks naming rules is rejected.
func Restore(r io.Reader, options ...Option) (*Env, error) {
	var state State
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	env := New(options...)
	if err := env.Load(state); err != nil {
		env.Destroy()
		return nil, err
	}
	return env, nil
}

// Load defines every binding of state in order.
func (e *Env) Load(state State) error {
	for _, v := range state.Variables {
		if err := e.DefineVariable(v.Name, v.Value, v.Mutable); err != nil {
			return err
		}
	}
	for _, f := range state.Functions {
		if err := e.DefineFunction(f.Name, f.Params, f.Body); err != nil {
			return err
		}
	}
	return nil
}
