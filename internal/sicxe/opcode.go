package sicxe

// UnknownMnemonic is returned for opcodes that are not part of the opcode table.
const UnknownMnemonic = "UNKNOWN"

// OpcodeMask selects the 6 opcode bits of the first instruction byte.
const OpcodeMask = 0xFC

// OpcodeResolver resolves an opcode to its mnemonic.
type OpcodeResolver interface {
	// Mnemonic returns the mnemonic of the opcode or UnknownMnemonic.
	Mnemonic(opcode uint8) string
}

var _ OpcodeResolver = OpcodeTable(nil)

// OpcodeTable is a static opcode to mnemonic mapping.
type OpcodeTable map[uint8]string

// Mnemonic implements OpcodeResolver. The low 2 bits of the passed opcode
// are ignored as they carry the n and i flags.
func (t OpcodeTable) Mnemonic(opcode uint8) string {
	name, ok := t[opcode&OpcodeMask]
	if !ok {
		return UnknownMnemonic
	}
	return name
}
