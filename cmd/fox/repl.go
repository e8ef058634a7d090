package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/fox/sessions"
)

func runREPL(ctx context.Context, session *sessions.Session, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "fox> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := session.Exec(ctx, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
