package handlers

import (
	"context"
	"fmt"

	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script runs a starlark file for each reported error, in process.
// The script sees error_name, error_message and a log(msg) builtin.
type Script struct {
	Path   string
	Logger logs.Logger
}

var _ foxenv.ErrorHandler = Script{}.Handle

func (s Script) Handle(ctx context.Context, reported error) error {
	name, _ := foxenv.ImmutableName(reported)

	thread := &starlark.Thread{
		Name: "error-handler",
		Print: func(_ *starlark.Thread, msg string) {
			s.log(ctx, msg)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	predeclared := starlark.StringDict{
		"error_name":    starlark.String(name),
		"error_message": starlark.String(reported.Error()),
		"log": starlarkutil.MakeFunc("log", func(msg string) {
			s.log(ctx, msg)
		}),
	}
	if _, err := starlark.ExecFileOptions(&syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}, thread, s.Path, nil, predeclared); err != nil {
		return fmt.Errorf("run error script %s: %w", s.Path, err)
	}
	return nil
}

func (s Script) log(ctx context.Context, msg string) {
	if s.Logger == nil {
		return
	}
	s.Logger.InfoContext(ctx, "error script",
		"script", s.Path,
		"message", msg,
	)
}
