package foxconfigs

import (
	"github.com/reusee/fox/cmds"
	"github.com/reusee/fox/configs"
	"github.com/reusee/fox/vars"
)

type ErrorLogPath string

const DefaultErrorLogPath = "errorlog.txt"

var errorLogFlag = cmds.Var[string]("-error-log", "append immutable update errors to this file")

func (Module) ErrorLogPath(
	loader configs.Loader,
) ErrorLogPath {
	return ErrorLogPath(vars.FirstNonZero(
		*errorLogFlag,
		configs.First[string](loader, "error_log"),
		DefaultErrorLogPath,
	))
}
