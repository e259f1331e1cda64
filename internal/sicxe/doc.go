// Package sicxe decodes SIC/XE machine instructions.
//
// # Instruction Formats
//
// Two memory-referencing encodings are supported, selected by the number of
// hex digits in the input:
//   - Format 3: 3 bytes (6 hex digits), 12-bit signed displacement
//   - Format 4: 4 bytes (8 hex digits), 20-bit unsigned address
//
// Both formats share the same header layout: a 6-bit opcode followed by the
// six addressing control bits n, i, x, b, p and e.
//
// # Addressing Classes
//
// The n and i bits select exactly one addressing class:
//
//	n i  class
//	0 0  SIC format (legacy 15-bit address)
//	1 1  Simple addressing
//	1 0  Indirect addressing
//	0 1  Immediate addressing
//
// The x, b, p and e bits modify the class. For format 3 the target address
// is computed relative to the program counter or base register, optionally
// indexed with the X register. Format 4 carries its address directly.
//
// # Collaborators
//
// The decoder does not own any machine state. The opcode table and memory
// are passed in as the OpcodeResolver and Memory interfaces, and register
// values are supplied per call through Registers. Decoding the same input
// with the same collaborators always yields the same Instruction.
//
// # Usage Example
//
//	dec := sicxe.New(logger, sicxe.OpcodeTable{0x00: "LDA"}, sicxe.MemoryMap{0x3600: 0x103000})
//	ins, err := dec.Decode("032600", sicxe.Registers{PC: 0x3000, B: 0x6000, X: 0x90})
//	if err != nil {
//		return fmt.Errorf("decoding instruction: %w", err)
//	}
//	if target, ok := ins.TargetAddress(); ok {
//		fmt.Printf("TA=%04X\n", target)
//	}
package sicxe
