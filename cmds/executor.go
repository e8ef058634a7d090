package cmds

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/fox/vars"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	return &Executor{
		commands: make(map[string]*Command),
	}
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

func (p *Executor) Has(name string) bool {
	_, ok := p.commands[name]
	return ok
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for {
		if len(args) == 0 {
			return nil
		}

		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			fnType := command.Func.Type()
			var callArgs []reflect.Value
			for i, max := 0, fnType.NumIn(); i < max; i++ {
				if fnType.IsVariadic() && i == max-1 {
					// variadic parameter takes the rest
					rest, err := getRest(fnType.In(i).Elem(), args)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					args = nil
					callArgs = append(callArgs, rest...)
					break
				}
				value, err := getArg(fnType.In(i), args)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if len(args) > 0 {
					args = args[1:]
				}
				callArgs = append(callArgs, value)
			}
			rets := command.Func.Call(callArgs)
			if len(rets) > 0 && !rets[0].IsNil() {
				return rets[0].Interface().(error)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}

	}
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func getRest(t reflect.Type, args []string) (ret []reflect.Value, err error) {
	for len(args) > 0 {
		value, err := getArg(t, args)
		if err != nil {
			return nil, err
		}
		ret = append(ret, value)
		args = args[1:]
	}
	return
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elemValue)
		return ptr, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
