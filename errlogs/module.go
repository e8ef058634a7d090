package errlogs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fox/foxconfigs"
)

type Module struct {
	dscope.Module
	Configs foxconfigs.Module
}

func (Module) Sink(
	path foxconfigs.ErrorLogPath,
) Sink {
	return Sink{
		Path: string(path),
	}
}
