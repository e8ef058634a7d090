package foxconfigs

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/reusee/fox/cmds"
	"github.com/reusee/fox/configs"
	"github.com/reusee/fox/vars"
)

// HandlerCommand lists argv candidates for the external error handler; the first runnable one is used.
type HandlerCommand [][]string

const DefaultHandlerFile = "errorhandle.py"

// DefaultHandlerCommand only runs when DefaultHandlerFile exists in the working directory.
var DefaultHandlerCommand = HandlerCommand{
	{"python3", DefaultHandlerFile},
	{"python", DefaultHandlerFile},
}

func (h HandlerCommand) IsDefault() bool {
	return slices.EqualFunc(h, DefaultHandlerCommand, slices.Equal)
}

var (
	handlerCommandFlag = cmds.Var[string]("-error-handler", "external error handler command line")
	noHandlerFlag      = cmds.Switch("-no-error-handler", "do not run an external error handler")
)

func (Module) HandlerCommand(
	loader configs.Loader,
) HandlerCommand {
	if *noHandlerFlag {
		return nil
	}
	if *handlerCommandFlag != "" {
		return HandlerCommand{strings.Fields(*handlerCommandFlag)}
	}
	if argvs := configs.First[[][]string](loader, "error_handler"); len(argvs) > 0 {
		return HandlerCommand(argvs)
	}
	return DefaultHandlerCommand
}

// HandlerScript is a starlark error handler script path. Empty disables it.
type HandlerScript string

var handlerScriptFlag = cmds.Var[string]("-error-script", "starlark error handler script")

func (Module) HandlerScript(
	loader configs.Loader,
) HandlerScript {
	return HandlerScript(vars.FirstNonZero(
		*handlerScriptFlag,
		configs.First[string](loader, "error_script"),
	))
}

type HandlerTimeout time.Duration

const DefaultHandlerTimeout = 10 * time.Second

func (Module) HandlerTimeout(
	loader configs.Loader,
) HandlerTimeout {
	return HandlerTimeout(mustDuration(loader, "handler_timeout", DefaultHandlerTimeout))
}

type FetchTimeout time.Duration

const DefaultFetchTimeout = 30 * time.Second

func (Module) FetchTimeout(
	loader configs.Loader,
) FetchTimeout {
	return FetchTimeout(mustDuration(loader, "fetch_timeout", DefaultFetchTimeout))
}

func mustDuration(loader configs.Loader, path string, def time.Duration) time.Duration {
	str := configs.First[string](loader, path)
	if str == "" {
		return def
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	if d <= 0 {
		panic(fmt.Errorf("config %s: must be positive, got %s", path, str))
	}
	return d
}
