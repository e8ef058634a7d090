package handlers

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/fox/errlogs"
	"github.com/reusee/fox/foxconfigs"
	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/logs"
	"github.com/reusee/fox/syncs"
)

type Module struct {
	dscope.Module
	ErrLogs errlogs.Module
	Configs foxconfigs.Module
}

const MaxConcurrentCommands = 4

func (Module) Command(
	candidates foxconfigs.HandlerCommand,
	timeout foxconfigs.HandlerTimeout,
) Command {
	command := Command{
		Candidates: candidates,
		Timeout:    time.Duration(timeout),
		Semaphore:  syncs.NewSemaphore(MaxConcurrentCommands),
	}
	if candidates.IsDefault() {
		command.Requires = foxconfigs.DefaultHandlerFile
	}
	return command
}

func (Module) Script(
	path foxconfigs.HandlerScript,
	logger logs.Logger,
) Script {
	return Script{
		Path:   string(path),
		Logger: logger,
	}
}

// ErrorHandlers is the ordered handler chain: log sink, starlark script, external command.
type ErrorHandlers []foxenv.ErrorHandler

func (Module) ErrorHandlers(
	sink errlogs.Sink,
	script Script,
	command Command,
) (ret ErrorHandlers) {
	ret = append(ret, sink.Handle)
	if script.Path != "" {
		ret = append(ret, script.Handle)
	}
	if len(command.Candidates) > 0 {
		ret = append(ret, command.Handle)
	}
	return
}
