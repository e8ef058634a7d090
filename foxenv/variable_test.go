package foxenv

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestDefineLookup(t *testing.T) {
	env := New()
	defer env.Destroy()

	if err := env.DefineVariable("x", 10, true); err != nil {
		t.Fatal(err)
	}
	v, err := env.LookupVariable("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "x" || v.Value != 10 || !v.Mutable {
		t.Fatalf("got %+v", v)
	}

	_, err = env.LookupVariable("y")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
	var nameErr *NameError
	if !errors.As(err, &nameErr) {
		t.Fatal()
	}
	if nameErr.Store != StoreVariable || nameErr.Name != "y" {
		t.Fatalf("got %+v", nameErr)
	}
}

func TestDefineDuplicateRejected(t *testing.T) {
	env := New()
	defer env.Destroy()

	if err := env.DefineVariable("x", 1, false); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		err := env.DefineVariable("x", 100+i, true)
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("got %v", err)
		}
	}
	v, err := env.LookupVariable("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.Value != 1 || v.Mutable {
		t.Fatalf("got %+v", v)
	}
	if n := len(env.Variables()); n != 1 {
		t.Fatalf("got %v", n)
	}
}

func TestUpdateImmutable(t *testing.T) {
	var handled []error
	env := New(WithErrorHandlers(func(ctx context.Context, err error) error {
		handled = append(handled, err)
		return nil
	}))
	defer env.Destroy()
	ctx := context.Background()

	if err := env.DefineVariable("y", 20, false); err != nil {
		t.Fatal(err)
	}
	for i := range 5 {
		err := env.UpdateVariable(ctx, "y", i)
		if !errors.Is(err, ErrImmutable) {
			t.Fatalf("got %v", err)
		}
		if name, ok := ImmutableName(err); !ok || name != "y" {
			t.Fatalf("got %v %v", name, ok)
		}
		v, err := env.LookupVariable("y")
		if err != nil {
			t.Fatal(err)
		}
		if v.Value != 20 {
			t.Fatalf("got %v", v.Value)
		}
	}
	if len(handled) != 5 {
		t.Fatalf("got %v", len(handled))
	}
}

func TestUpdateMutable(t *testing.T) {
	called := false
	env := New(WithErrorHandlers(func(ctx context.Context, err error) error {
		called = true
		return nil
	}))
	defer env.Destroy()
	ctx := context.Background()

	if err := env.DefineVariable("x", 10, true); err != nil {
		t.Fatal(err)
	}
	for _, value := range []int{15, -3, 0, 1 << 40} {
		if err := env.UpdateVariable(ctx, "x", value); err != nil {
			t.Fatal(err)
		}
		v, err := env.LookupVariable("x")
		if err != nil {
			t.Fatal(err)
		}
		if v.Value != value || !v.Mutable || v.Name != "x" {
			t.Fatalf("got %+v", v)
		}
	}

	err := env.UpdateVariable(ctx, "nope", 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
	if called {
		t.Fatal("handlers only run for immutable errors")
	}
}

func TestHandlerFailureDoesNotMask(t *testing.T) {
	var warned []string
	secondRan := false
	env := New(
		WithErrorHandlers(
			func(ctx context.Context, err error) error {
				return errors.New("handler unavailable")
			},
			func(ctx context.Context, err error) error {
				secondRan = true
				return nil
			},
		),
		WithWarn(func(ctx context.Context, msg string, args ...any) {
			warned = append(warned, msg)
		}),
	)
	defer env.Destroy()

	if err := env.DefineVariable("y", 20, false); err != nil {
		t.Fatal(err)
	}
	err := env.UpdateVariable(context.Background(), "y", 25)
	if !errors.Is(err, ErrImmutable) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "variable y: immutable" {
		t.Fatalf("got %v", err)
	}
	if len(warned) != 1 {
		t.Fatalf("got %v", warned)
	}
	if !secondRan {
		t.Fatal()
	}
}

func TestHandlerCanReenter(t *testing.T) {
	var env *Env
	env = New(WithErrorHandlers(func(ctx context.Context, err error) error {
		name, _ := ImmutableName(err)
		return env.DefineVariable(name+"_failed", 1, false)
	}))
	defer env.Destroy()
	if err := env.DefineVariable("y", 1, false); err != nil {
		t.Fatal(err)
	}
	if err := env.UpdateVariable(context.Background(), "y", 2); !errors.Is(err, ErrImmutable) {
		t.Fatalf("got %v", err)
	}
	if _, err := env.LookupVariable("y_failed"); err != nil {
		t.Fatal(err)
	}
}

func TestDelete(t *testing.T) {
	env := New()
	defer env.Destroy()

	for i, name := range []string{"a", "b", "c", "d"} {
		if err := env.DefineVariable(name, i, i%2 == 0); err != nil {
			t.Fatal(err)
		}
	}

	if err := env.DeleteVariable("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.LookupVariable("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
	if err := env.DeleteVariable("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}

	if str := fmt.Sprintf("%v", env.Variables()); str != "[{a 0 true} {c 2 true} {d 3 false}]" {
		t.Fatalf("got %s", str)
	}
	// index follows compaction
	for i, name := range []string{"a", "c", "d"} {
		if env.vars.index[name] != i {
			t.Fatalf("%s: got %v", name, env.vars.index[name])
		}
	}
	if err := env.UpdateVariable(context.Background(), "c", 42); err != nil {
		t.Fatal(err)
	}
	if v, _ := env.LookupVariable("c"); v.Value != 42 {
		t.Fatalf("got %v", v.Value)
	}

	// name is free again
	if err := env.DefineVariable("b", 7, false); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", env.Variables()); str != "[{a 0 true} {c 42 true} {d 3 false} {b 7 false}]" {
		t.Fatalf("got %s", str)
	}
}

func TestGrowth(t *testing.T) {
	env := New()
	defer env.Destroy()

	for i := range 11 {
		if err := env.DefineVariable(fmt.Sprintf("v%d", i), i*10, i%2 == 0); err != nil {
			t.Fatal(err)
		}
	}
	if c := env.vars.capacity(); c != 2*DefaultInitialCapacity {
		t.Fatalf("got %v", c)
	}
	for i := range 11 {
		v, err := env.LookupVariable(fmt.Sprintf("v%d", i))
		if err != nil {
			t.Fatal(err)
		}
		if v.Value != i*10 || v.Mutable != (i%2 == 0) {
			t.Fatalf("got %+v", v)
		}
	}
	vars := env.Variables()
	for i, v := range vars {
		if v.Name != fmt.Sprintf("v%d", i) {
			t.Fatalf("got %v", v.Name)
		}
	}

	for i := 11; i < 100; i++ {
		if err := env.DefineVariable(fmt.Sprintf("v%d", i), i, true); err != nil {
			t.Fatal(err)
		}
	}
	if c := env.vars.capacity(); c != 160 {
		t.Fatalf("got %v", c)
	}
}

func TestVariablesIsCopy(t *testing.T) {
	env := New()
	defer env.Destroy()
	if err := env.DefineVariable("x", 1, false); err != nil {
		t.Fatal(err)
	}
	vars := env.Variables()
	vars[0].Value = 99
	vars[0].Mutable = true
	v, _ := env.LookupVariable("x")
	if v.Value != 1 || v.Mutable {
		t.Fatalf("got %+v", v)
	}
}

func TestScenarioMutability(t *testing.T) {
	var lines []string
	env := New(WithErrorHandlers(func(ctx context.Context, err error) error {
		name, _ := ImmutableName(err)
		lines = append(lines, "Error: Variable "+name+" is immutable!\n")
		return nil
	}))
	defer env.Destroy()
	ctx := context.Background()

	if err := env.DefineVariable("x", 10, true); err != nil {
		t.Fatal(err)
	}
	if err := env.DefineVariable("y", 20, false); err != nil {
		t.Fatal(err)
	}
	if err := env.UpdateVariable(ctx, "x", 15); err != nil {
		t.Fatal(err)
	}
	if v, _ := env.LookupVariable("x"); v.Value != 15 {
		t.Fatalf("got %v", v.Value)
	}
	if err := env.UpdateVariable(ctx, "y", 25); !errors.Is(err, ErrImmutable) {
		t.Fatalf("got %v", err)
	}
	if v, _ := env.LookupVariable("y"); v.Value != 20 {
		t.Fatalf("got %v", v.Value)
	}
	if len(lines) != 1 || lines[0] != "Error: Variable y is immutable!\n" {
		t.Fatalf("got %q", lines)
	}
}
