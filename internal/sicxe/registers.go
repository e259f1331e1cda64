package sicxe

// AddressMask limits addresses and register values to the 24-bit address space.
const AddressMask = 0xFFFFFF

// Registers contains the register values that take part in target address
// calculation.
type Registers struct {
	PC uint32 // program counter
	B  uint32 // base register
	X  uint32 // index register
}
