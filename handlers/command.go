package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/syncs"
)

var ErrHandlerUnavailable = errors.New("error handler unavailable")

// Command runs an external process for each reported error.
// Candidates are tried in order; the first whose program resolves is run.
// When Requires is set and that file is missing under Dir, the command is skipped.
type Command struct {
	Candidates [][]string
	Timeout    time.Duration
	Semaphore  syncs.Semaphore
	Dir        string
	Requires   string
}

var _ foxenv.ErrorHandler = Command{}.Handle

func (c Command) Handle(ctx context.Context, reported error) error {
	if c.Requires != "" {
		path := c.Requires
		if c.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(c.Dir, path)
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	argv, err := c.resolve()
	if err != nil {
		return err
	}

	if c.Semaphore != nil {
		if err := c.Semaphore.AcquireContext(ctx); err != nil {
			return err
		}
		defer c.Semaphore.Release()
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	name, _ := foxenv.ImmutableName(reported)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(),
		"FOX_ERROR="+reported.Error(),
		"FOX_ERROR_NAME="+name,
	)
	output := new(bytes.Buffer)
	cmd.Stdout = output
	cmd.Stderr = output
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w: %s", strings.Join(argv, " "), err, bytes.TrimSpace(output.Bytes()))
	}
	return nil
}

func (c Command) resolve() ([]string, error) {
	for _, argv := range c.Candidates {
		if len(argv) == 0 {
			continue
		}
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		return argv, nil
	}
	return nil, ErrHandlerUnavailable
}
