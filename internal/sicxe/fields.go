package sicxe

import "strings"

// Flags contains the nixbpe addressing control bits.
type Flags struct {
	N bool // indirect
	I bool // immediate
	X bool // indexed
	B bool // base relative
	P bool // program counter relative
	E bool // extended
}

// String returns the flags as a 6 character bit string in nixbpe order.
func (f Flags) String() string {
	var sb strings.Builder
	for _, bit := range []bool{f.N, f.I, f.X, f.B, f.P, f.E} {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Fields is the raw bit field breakdown of an instruction.
type Fields struct {
	Opcode       uint8
	Flags        Flags
	Displacement uint32 // 12-bit displacement for format 3, 20-bit address for format 4
}

const (
	dispMask    = 0xFFF
	dispSignBit = 0x800
	addressMask = 0xFFFFF
)

// ExtractFields slices the raw instruction into its fields.
func ExtractFields(raw uint32, format Format) Fields {
	if format == Format4 {
		return extractFields(raw, 24, addressMask)
	}
	return extractFields(raw, 16, dispMask)
}

// extractFields reads the header whose opcode byte starts at bit shift.
// The flag bits follow the opcode byte downwards, the field occupies the
// bits below the e flag.
func extractFields(raw uint32, shift uint, fieldMask uint32) Fields {
	bit := func(n uint) bool {
		return (raw>>n)&1 == 1
	}
	return Fields{
		Opcode: uint8((raw >> shift) & OpcodeMask),
		Flags: Flags{
			N: bit(shift + 1),
			I: bit(shift),
			X: bit(shift - 1),
			B: bit(shift - 2),
			P: bit(shift - 3),
			E: bit(shift - 4),
		},
		Displacement: raw & fieldMask,
	}
}

// SignDisplacement interprets a 12-bit format 3 displacement as two's complement.
func SignDisplacement(disp uint32) int32 {
	disp &= dispMask
	if disp&dispSignBit != 0 {
		return int32(disp) - 0x1000
	}
	return int32(disp)
}
