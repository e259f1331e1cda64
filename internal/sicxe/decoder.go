package sicxe

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Decoder decodes SIC/XE instructions using an opcode table and a memory
// view. It holds no mutable state and can be shared between goroutines.
type Decoder struct {
	logger  *log.Logger
	opcodes OpcodeResolver
	memory  Memory
}

// Instruction is a decoded SIC/XE instruction.
type Instruction struct {
	Hex      string // normalized upper case input
	Raw      uint32
	Format   Format
	Machine  Machine
	Opcode   uint8
	Mnemonic string
	Flags    Flags
	Class    Class
	Mode     string // addressing mode label

	Displacement       uint32 // raw displacement (format 3) or address (format 4)
	SignedDisplacement int32  // two's complement displacement, equals Displacement for format 4

	Target     uint32
	HasTarget  bool
	Trace      string // description of the target address calculation
	Unresolved error  // wraps ErrAmbiguousAddressingMode when no target rule applies

	Value    uint32 // memory word at the target address
	HasValue bool
}

// New returns a new decoder.
func New(logger *log.Logger, opcodes OpcodeResolver, memory Memory) *Decoder {
	return &Decoder{
		logger:  logger,
		opcodes: opcodes,
		memory:  memory,
	}
}

// Decode parses and decodes a single instruction given as 6 or 8 hex digits.
// An addressing bit combination without a target address rule is not an
// error, the returned instruction has no target and Unresolved set instead.
func (d *Decoder) Decode(hex string, regs Registers) (*Instruction, error) {
	raw, format, err := ParseHex(hex)
	if err != nil {
		return nil, err
	}

	fields := ExtractFields(raw, format)
	ins := &Instruction{
		Hex:                strings.ToUpper(hex),
		Raw:                raw,
		Format:             format,
		Machine:            MachineOf(fields.Flags, format),
		Opcode:             fields.Opcode,
		Mnemonic:           d.opcodes.Mnemonic(fields.Opcode),
		Flags:              fields.Flags,
		Class:              ClassOf(fields.Flags),
		Mode:               ModeLabel(fields.Flags, format),
		Displacement:       fields.Displacement,
		SignedDisplacement: int32(fields.Displacement),
	}

	var res resolution
	if format == Format4 {
		res = resolveFormat4(fields)
	} else {
		ins.SignedDisplacement = SignDisplacement(fields.Displacement)
		res = resolveFormat3(fields, regs, d.memory)
	}

	if !res.ok {
		ins.Unresolved = res.err
		d.logger.Debug("No target address rule",
			log.String("hex", ins.Hex),
			log.String("nixbpe", ins.Flags.String()),
			log.Err(res.err))
		return ins, nil
	}

	ins.Target = res.target
	ins.HasTarget = true
	ins.Trace = res.trace
	ins.Value, ins.HasValue = d.memory.Read(res.target)

	d.logger.Debug("Decoded instruction",
		log.String("hex", ins.Hex),
		log.Int("format", int(format)),
		log.String("mode", ins.Mode),
		log.Hex("target", ins.Target))
	return ins, nil
}

// TargetAddress returns the target address and whether one was calculated.
func (ins *Instruction) TargetAddress() (uint32, bool) {
	return ins.Target, ins.HasTarget
}

// MemoryValue returns the memory word at the target address, if known.
func (ins *Instruction) MemoryValue() (uint32, bool) {
	return ins.Value, ins.HasValue
}

// Binary returns the instruction in binary, grouped in 4-bit clusters.
func (ins *Instruction) Binary() string {
	return GroupBits(ins.Raw, ins.Format.Bits())
}

// FieldBinary returns the displacement or address field in binary, grouped
// in 4-bit clusters.
func (ins *Instruction) FieldBinary() string {
	return GroupBits(ins.Displacement, ins.Format.FieldBits())
}

// FieldHex returns the displacement or address field as upper case hex.
func (ins *Instruction) FieldHex() string {
	return fmt.Sprintf("%X", ins.Displacement)
}

// OpcodeHex returns the opcode as a 6 digit upper case hex string.
func (ins *Instruction) OpcodeHex() string {
	return fmt.Sprintf("%06X", ins.Opcode)
}
