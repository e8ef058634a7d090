package cmds

import "strings"

// Var defines a flag taking one value, and name+"." resetting it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")).Args("VALUE"))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset " + name))

	return &value
}

// Switch defines name setting true and !name setting false.
func Switch(name string, desc ...string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset " + name))

	return &value
}
