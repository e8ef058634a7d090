package foxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/fox/cmds"
	"github.com/reusee/fox/configs"
	"github.com/reusee/fox/foxenv"
	"github.com/reusee/fox/vars"
)

type InitialCapacity int

var initialCapacityFlag = cmds.Var[int]("-capacity", "initial store capacity")

func (Module) InitialCapacity(
	loader configs.Loader,
) InitialCapacity {
	return InitialCapacity(vars.FirstNonZero(
		*initialCapacityFlag,
		configs.First[int](loader, "initial_capacity"),
		foxenv.DefaultInitialCapacity,
	))
}

type MaxNameLength int

var maxNameLengthFlag = cmds.Var[int]("-max-name-length", "maximum name length in runes")

func (Module) MaxNameLength(
	loader configs.Loader,
) MaxNameLength {
	return MaxNameLength(vars.FirstNonZero(
		*maxNameLengthFlag,
		configs.First[int](loader, "max_name_length"),
		foxenv.DefaultMaxNameLength,
	))
}

type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(home, ".fox_history"))
	}
	return ""
}
