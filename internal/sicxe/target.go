package sicxe

import "fmt"

const sicAddressMask = 0x7FFF

// resolution is the outcome of a target address calculation.
type resolution struct {
	target uint32
	ok     bool
	trace  string
	err    error // set when no rule applies
}

// wrap reduces a signed sum to the 24-bit address space.
func wrap(value int64) uint32 {
	return uint32(value) & AddressMask
}

// resolveFormat3 calculates the target address of a format 3 instruction.
func resolveFormat3(fields Fields, regs Registers, mem Memory) resolution {
	flags := fields.Flags
	disp := fields.Displacement
	signed := SignDisplacement(disp)

	var res resolution
	switch ClassOf(flags) {
	case SICClass:
		res = resolveSIC(flags, disp)

	case SimpleClass:
		res = resolveSimple(flags, disp, signed, regs)

	case IndirectClass:
		res = resolveIndirect(flags, signed, regs, mem)

	case ImmediateClass:
		target := uint32(signed)
		if signed < 0 {
			target = disp
		}
		res = resolution{
			target: target,
			ok:     true,
			trace:  fmt.Sprintf("Immediate addressing = 0x%04X", target),
		}
	}

	if flags.X && res.ok {
		res.target = wrap(int64(res.target) + int64(regs.X))
		res.trace += fmt.Sprintf(" + X(0x%04X) = 0x%04X", regs.X, res.target)
	}
	return res
}

// resolveSIC treats the b, p and e bits as the upper bits of a 15-bit address.
func resolveSIC(flags Flags, disp uint32) resolution {
	var target uint32
	if flags.B {
		target |= 1 << 14
	}
	if flags.P {
		target |= 1 << 13
	}
	if flags.E {
		target |= 1 << 12
	}
	target = (target + disp) & sicAddressMask

	return resolution{
		target: target,
		ok:     true,
		trace:  fmt.Sprintf("SIC format (15bit address) = 0x%04X", target),
	}
}

func resolveSimple(flags Flags, disp uint32, signed int32, regs Registers) resolution {
	switch {
	case flags.P && !flags.B:
		target := wrap(int64(regs.PC) + int64(signed))
		return resolution{
			target: target,
			ok:     true,
			trace:  fmt.Sprintf("PC-relative: PC(0x%04X) + disp(%+d) = 0x%04X", regs.PC, signed, target),
		}

	case flags.B && !flags.P:
		target := wrap(int64(regs.B) + int64(signed))
		return resolution{
			target: target,
			ok:     true,
			trace:  fmt.Sprintf("Base-relative: Base(0x%04X) + disp(%+d) = 0x%04X", regs.B, signed, target),
		}

	case !flags.B && !flags.P:
		return resolution{
			target: disp,
			ok:     true,
			trace:  fmt.Sprintf("Direct addressing (12bit) = 0x%04X", disp),
		}

	default:
		return resolution{
			err: fmt.Errorf("%w: simple addressing with both PC-relative and base-relative set", ErrAmbiguousAddressingMode),
		}
	}
}

// resolveIndirect reads the target address from the memory word that the
// PC relative displacement points to. Unknown pointers resolve to 0.
func resolveIndirect(flags Flags, signed int32, regs Registers, mem Memory) resolution {
	if !flags.P {
		return resolution{
			err: fmt.Errorf("%w: indirect addressing without PC-relative", ErrAmbiguousAddressingMode),
		}
	}

	pointer := wrap(int64(regs.PC) + int64(signed))
	target, _ := mem.Read(pointer)
	return resolution{
		target: target,
		ok:     true,
		trace: fmt.Sprintf("Indirect PC-relative: [PC(0x%04X) + disp(%+d)] = [0x%04X] = 0x%06X",
			regs.PC, signed, pointer, target),
	}
}

// resolveFormat4 returns the 20-bit address field as target, extended
// instructions do not use relative or indirect addressing.
func resolveFormat4(fields Fields) resolution {
	return resolution{
		target: fields.Displacement,
		ok:     true,
		trace:  fmt.Sprintf("Extended addressing (20bit) = 0x%05X", fields.Displacement),
	}
}
