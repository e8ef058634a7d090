package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over a read-only copy of globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// EnvGlobals exposes each variable by name plus the full state under "env".
// A variable named "env" is shadowed by the state.
func EnvGlobals(env *foxenv.Env) map[string]any {
	state := env.State()
	ret := make(map[string]any, len(state.Variables)+1)
	for _, v := range state.Variables {
		ret[v.Name] = v.Value
	}
	ret["env"] = state
	return ret
}
