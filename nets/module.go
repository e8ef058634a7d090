package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fox/foxconfigs"
	"github.com/reusee/fox/logs"
)

type Module struct {
	dscope.Module
	Configs foxconfigs.Module
	Logs    logs.Module
}
