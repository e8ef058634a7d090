package sessions

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/fox/cmds"
	"github.com/reusee/fox/debugs"
	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/logs"
	"github.com/reusee/fox/nets"
	"gopkg.in/yaml.v3"
)

// Session drives one environment from text commands, one command per line.
type Session struct {
	env      *foxenv.Env
	out      io.Writer
	executor *cmds.Executor
	fetch    nets.Fetch
	tap      debugs.Tap
	logger   logs.Logger
	ctx      context.Context
}

func (s *Session) Env() *foxenv.Env {
	return s.env
}

// Exec runs one line. Blank lines and lines starting with # are ignored.
func (s *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	s.ctx = ctx
	defer func() {
		s.ctx = nil
	}()
	return s.executor.Execute(strings.Fields(line))
}

// RunScript executes lines until the first error, which is returned with its line number.
func (s *Session) RunScript(ctx context.Context, name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := s.Exec(ctx, scanner.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) defineCommands() {
	s.executor.Define("var", cmds.Func(func(name string, value int) error {
		return s.env.DefineVariable(name, value, true)
	}).Desc("define a mutable variable").Args("NAME VALUE"))

	s.executor.Define("let", cmds.Func(func(name string, value int) error {
		return s.env.DefineVariable(name, value, false)
	}).Desc("define an immutable variable").Args("NAME VALUE"))

	s.executor.Define("set", cmds.Func(func(name string, value int) error {
		return s.env.UpdateVariable(s.ctx, name, value)
	}).Desc("update a mutable variable").Args("NAME VALUE"))

	s.executor.Define("get", cmds.Func(func(name string) error {
		v, err := s.env.LookupVariable(name)
		if err != nil {
			return err
		}
		s.printf("%d\n", v.Value)
		return nil
	}).Desc("print a variable").Args("NAME"))

	s.executor.Define("del", cmds.Func(func(name string) error {
		return s.env.DeleteVariable(name)
	}).Desc("delete a variable").Args("NAME"))

	s.executor.Define("def", cmds.Func(func(name string, params string, body ...string) error {
		return s.env.DefineFunction(name, parseParams(params), strings.Join(body, " "))
	}).Desc("define a function, PARAMS is comma separated or - for none").Args("NAME PARAMS BODY..."))

	s.executor.Define("call", cmds.Func(func(name string, args ...int) error {
		if !s.env.HasEvaluator() {
			if _, err := s.env.Call(name, args); err != nil {
				return err
			}
			s.printf("Calling function %s with correct arguments.\n", name)
			return nil
		}
		ret, err := s.env.Invoke(s.ctx, name, args)
		if err != nil {
			return err
		}
		s.printf("%d\n", ret)
		return nil
	}).Desc("call a function").Args("NAME ARGS..."))

	s.executor.Define("vars", cmds.Func(func() {
		for _, v := range s.env.Variables() {
			kind := "let"
			if v.Mutable {
				kind = "var"
			}
			s.printf("%s %s %d\n", kind, v.Name, v.Value)
		}
	}).Desc("list variables"))

	s.executor.Define("funcs", cmds.Func(func() {
		for _, f := range s.env.Functions() {
			s.printf("def %s %s %s\n", f.Name, formatParams(f.Params), f.Body)
		}
	}).Desc("list functions"))

	s.executor.Define("dump", cmds.Func(func() error {
		enc := yaml.NewEncoder(s.out)
		enc.SetIndent(2)
		if err := enc.Encode(s.env.State()); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		return enc.Close()
	}).Desc("print the environment as YAML"))

	s.executor.Define("fetch", cmds.Func(func(url string) {
		if err := s.fetch(s.ctx, url); err != nil {
			s.logger.WarnContext(s.ctx, "fetch failed",
				"url", url,
				"error", err,
			)
			return
		}
		s.logger.InfoContext(s.ctx, "fetched", "url", url)
	}).Desc("GET a URL, failures are warnings").Args("URL"))

	s.executor.Define("tap", cmds.Func(func() {
		s.tap(s.ctx, "session", debugs.EnvGlobals(s.env))
	}).Desc("inspect the environment in a starlark REPL"))

	s.executor.Define("help", cmds.Func(func() {
		s.executor.PrintUsage(s.out)
	}).Desc("print commands"))
}

func parseParams(str string) []string {
	if str == "-" || str == "" {
		return nil
	}
	return strings.Split(str, ",")
}

func formatParams(params []string) string {
	if len(params) == 0 {
		return "-"
	}
	return strings.Join(params, ",")
}
