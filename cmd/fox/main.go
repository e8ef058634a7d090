package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/fox/cmds"
	"github.com/reusee/fox/foxconfigs"
	"github.com/reusee/fox/logs"
	"github.com/reusee/fox/modes"
	"github.com/reusee/fox/sessions"
	"golang.org/x/term"
)

var scriptPath = cmds.Var[string]("-f", "run a script file")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(sessions.Module),
		modes.ForProduction(),
	)

	var exitCode int
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newEnv sessions.NewEnv,
		newSession sessions.NewSession,
		historyFile foxconfigs.HistoryFile,
	) {
		ctx, _ = newSpan(ctx, "")

		env := newEnv()
		defer env.Destroy()
		session := newSession(env, os.Stdout)

		switch {

		case *scriptPath != "":
			f, err := os.Open(*scriptPath)
			if err != nil {
				logger.ErrorContext(ctx, "open script", "error", err)
				exitCode = 1
				return
			}
			defer f.Close()
			if err := session.RunScript(ctx, *scriptPath, f); err != nil {
				fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err))
				exitCode = 1
				return
			}

		case term.IsTerminal(int(os.Stdin.Fd())):
			if err := runREPL(ctx, session, string(historyFile)); err != nil {
				logger.ErrorContext(ctx, "repl", "error", err)
				exitCode = 1
				return
			}

		default:
			if err := session.RunScript(ctx, "stdin", os.Stdin); err != nil {
				fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err))
				exitCode = 1
				return
			}

		}
	})

	os.Exit(exitCode)
}
