package sicxe

// Format is the instruction encoding size in bytes.
type Format uint8

// Supported instruction formats.
const (
	Format3 Format = 3
	Format4 Format = 4
)

// Bits returns the width of the whole instruction in bits.
func (f Format) Bits() int {
	if f == Format4 {
		return 32
	}
	return 24
}

// FieldBits returns the width of the displacement or address field in bits.
func (f Format) FieldBits() int {
	if f == Format4 {
		return 20
	}
	return 12
}

// HexDigits returns the number of hex digits of an encoded instruction.
func (f Format) HexDigits() int {
	return f.Bits() / 4
}

// Machine is the machine class an instruction is compatible with.
type Machine string

// Machine classes.
const (
	MachineSIC   Machine = "SIC"
	MachineSICXE Machine = "SIC/XE"
)

func (m Machine) String() string {
	return string(m)
}
