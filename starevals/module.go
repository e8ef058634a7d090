package starevals

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

const DefaultMaxSteps = 1 << 20

func (Module) Evaluator() Evaluator {
	return Evaluator{
		MaxSteps: DefaultMaxSteps,
	}
}
