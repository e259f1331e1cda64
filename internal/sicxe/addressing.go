package sicxe

import "strings"

// Class is the addressing class selected by the n and i bits.
type Class uint8

// Addressing classes.
const (
	SICClass Class = iota
	SimpleClass
	IndirectClass
	ImmediateClass
)

var classNames = map[Class]string{
	SICClass:       "SIC format",
	SimpleClass:    "Simple addressing",
	IndirectClass:  "Indirect addressing",
	ImmediateClass: "Immediate addressing",
}

func (c Class) String() string {
	return classNames[c]
}

// ClassOf returns the addressing class for the flags.
func ClassOf(flags Flags) Class {
	switch {
	case flags.N && flags.I:
		return SimpleClass
	case flags.N:
		return IndirectClass
	case flags.I:
		return ImmediateClass
	default:
		return SICClass
	}
}

// ModeLabel returns a human readable description of the addressing mode.
// The label is descriptive only and does not influence target address
// calculation.
func ModeLabel(flags Flags, format Format) string {
	var sb strings.Builder
	sb.WriteString(ClassOf(flags).String())

	if format == Format4 {
		if flags.E {
			sb.WriteString(", Extended")
		}
	} else {
		if flags.P {
			sb.WriteString(", PC-relative")
		}
		if flags.B {
			sb.WriteString(", Base-relative")
		}
	}

	if flags.X {
		sb.WriteString(", Indexed")
	}
	return sb.String()
}

// MachineOf returns the machine class of an instruction. Format 3 instructions
// with both n and i cleared are plain SIC instructions.
func MachineOf(flags Flags, format Format) Machine {
	if format == Format3 && ClassOf(flags) == SICClass {
		return MachineSIC
	}
	return MachineSICXE
}
