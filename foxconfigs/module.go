package foxconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fox/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
