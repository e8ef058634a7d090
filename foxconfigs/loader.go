package foxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/fox/configs"
	"github.com/reusee/fox/logs"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"fox.cue",
	".fox.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
