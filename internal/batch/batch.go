// Package batch loads decode cases from Starlark case files.
//
// A case file assigns a list of dicts to the global "cases":
//
//	cases = [
//	    {"hex": "032600", "pc": 0x003000},
//	    {"hex": "03C300", "base": 0x006000, "x": 0x90},
//	    {"hex": "0310C303"},
//	]
//
// Every case requires "hex", the register keys "pc", "base" and "x" are
// optional and override the registers of the run.
package batch

import (
	"errors"
	"fmt"

	"github.com/retroenv/sicxedecode/internal/sicxe"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrCaseFile is returned for case files with invalid content.
var ErrCaseFile = errors.New("invalid case file")

const casesGlobal = "cases"

// Case is a single instruction to decode.
type Case struct {
	Hex string

	// optional register overrides
	PC   *uint32
	Base *uint32
	X    *uint32
}

// Registers returns the registers of the case, registers that the case does
// not set are taken from defaults.
func (c Case) Registers(defaults sicxe.Registers) sicxe.Registers {
	regs := defaults
	if c.PC != nil {
		regs.PC = *c.PC
	}
	if c.Base != nil {
		regs.B = *c.Base
	}
	if c.X != nil {
		regs.X = *c.X
	}
	return regs
}

// LoadFile executes a case file and returns its cases.
func LoadFile(path string) ([]Case, error) {
	return load(path, nil)
}

// Parse executes case file source and returns its cases. The filename is
// only used in error messages.
func Parse(filename string, src string) ([]Case, error) {
	return load(filename, src)
}

func load(filename string, src any) ([]Case, error) {
	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("executing case file '%s': %w", filename, err)
	}

	value, ok := globals[casesGlobal]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' does not define '%s'", ErrCaseFile, filename, casesGlobal)
	}
	list, ok := value.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is a %s, expected a list", ErrCaseFile, casesGlobal, value.Type())
	}

	if list.Len() == 0 {
		return nil, fmt.Errorf("%w: '%s' contains no cases", ErrCaseFile, casesGlobal)
	}

	cases := make([]Case, 0, list.Len())
	for i := range list.Len() {
		c, err := convertCase(list.Index(i))
		if err != nil {
			return nil, fmt.Errorf("%w: case %d: %w", ErrCaseFile, i+1, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func convertCase(value starlark.Value) (Case, error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return Case{}, fmt.Errorf("entry is a %s, expected a dict", value.Type())
	}

	var c Case
	for _, item := range dict.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			return Case{}, fmt.Errorf("key %s is not a string", item[0].String())
		}

		var err error
		switch key {
		case "hex":
			hex, ok := starlark.AsString(item[1])
			if !ok {
				return Case{}, fmt.Errorf("'hex' is a %s, expected a string", item[1].Type())
			}
			c.Hex = hex
		case "pc":
			c.PC, err = convertRegister(key, item[1])
		case "base":
			c.Base, err = convertRegister(key, item[1])
		case "x":
			c.X, err = convertRegister(key, item[1])
		default:
			return Case{}, fmt.Errorf("unknown key '%s'", key)
		}
		if err != nil {
			return Case{}, err
		}
	}

	if c.Hex == "" {
		return Case{}, errors.New("missing 'hex'")
	}
	return c, nil
}

func convertRegister(name string, value starlark.Value) (*uint32, error) {
	i, ok := value.(starlark.Int)
	if !ok {
		return nil, fmt.Errorf("'%s' is a %s, expected an int", name, value.Type())
	}
	v, ok := i.Int64()
	if !ok || v < 0 || v > sicxe.AddressMask {
		return nil, fmt.Errorf("'%s' value %s is out of the 24-bit range", name, i.String())
	}
	reg := uint32(v)
	return &reg, nil
}
