package sessions

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/fox/cmds"
	"github.com/reusee/fox/debugs"
	"github.com/reusee/fox/foxconfigs"
	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/handlers"
	"github.com/reusee/fox/logs"
	"github.com/reusee/fox/nets"
	"github.com/reusee/fox/starevals"
)

type Module struct {
	dscope.Module
	Configs  foxconfigs.Module
	Handlers handlers.Module
	Nets     nets.Module
	Debugs   debugs.Module
	Evals    starevals.Module
}

var noEval = cmds.Switch("-no-eval", "validate calls without evaluating bodies")

// NewEnv creates a configured environment. The caller owns it and must Destroy it.
type NewEnv func() *foxenv.Env

func (Module) NewEnv(
	capacity foxconfigs.InitialCapacity,
	maxNameLength foxconfigs.MaxNameLength,
	errorHandlers handlers.ErrorHandlers,
	evaluator starevals.Evaluator,
	warn logs.Warn,
) NewEnv {
	return func() *foxenv.Env {
		options := []foxenv.Option{
			foxenv.WithInitialCapacity(int(capacity)),
			foxenv.WithMaxNameLength(int(maxNameLength)),
			foxenv.WithErrorHandlers(errorHandlers...),
			foxenv.WithWarn(warn),
		}
		if !*noEval {
			options = append(options, foxenv.WithEvaluator(evaluator))
		}
		return foxenv.New(options...)
	}
}

type NewSession func(env *foxenv.Env, out io.Writer) *Session

func (Module) NewSession(
	fetch nets.Fetch,
	tap debugs.Tap,
	logger logs.Logger,
) NewSession {
	return func(env *foxenv.Env, out io.Writer) *Session {
		s := &Session{
			env:      env,
			out:      out,
			executor: cmds.NewExecutor(),
			fetch:    fetch,
			tap:      tap,
			logger:   logger,
		}
		s.defineCommands()
		return s
	}
}
