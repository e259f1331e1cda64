package sicxe

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testRegisters = Registers{PC: 0x003000, B: 0x006000, X: 0x000090}

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	opcodes := OpcodeTable{0x00: "LDA"}
	memory := MemoryMap{
		0x3030: 0x003600,
		0x3600: 0x103000,
		0x6390: 0x00C303,
		0xC303: 0x003030,
	}
	return New(log.NewTestLogger(t), opcodes, memory)
}

//nolint:funlen // table driven test
func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		hex       string
		format    Format
		machine   Machine
		nixbpe    string
		disp      uint32
		mode      string
		target    uint32
		trace     string
		value     uint32
		hasValue  bool
		hasTarget bool
	}{
		{
			name:      "simple pc relative",
			hex:       "032600",
			format:    Format3,
			machine:   MachineSICXE,
			nixbpe:    "110010",
			disp:      0x600,
			mode:      "Simple addressing, PC-relative",
			target:    0x3600,
			trace:     "PC-relative: PC(0x3000) + disp(+1536) = 0x3600",
			value:     0x103000,
			hasValue:  true,
			hasTarget: true,
		},
		{
			name:      "simple base relative indexed",
			hex:       "03C300",
			format:    Format3,
			machine:   MachineSICXE,
			nixbpe:    "111100",
			disp:      0x300,
			mode:      "Simple addressing, Base-relative, Indexed",
			target:    0x6390,
			trace:     "Base-relative: Base(0x6000) + disp(+768) = 0x6300 + X(0x0090) = 0x6390",
			value:     0x00C303,
			hasValue:  true,
			hasTarget: true,
		},
		{
			name:      "indirect pc relative",
			hex:       "022030",
			format:    Format3,
			machine:   MachineSICXE,
			nixbpe:    "100010",
			disp:      0x030,
			mode:      "Indirect addressing, PC-relative",
			target:    0x3600,
			trace:     "Indirect PC-relative: [PC(0x3000) + disp(+48)] = [0x3030] = 0x003600",
			value:     0x103000,
			hasValue:  true,
			hasTarget: true,
		},
		{
			name:      "immediate",
			hex:       "010030",
			format:    Format3,
			machine:   MachineSICXE,
			nixbpe:    "010000",
			disp:      0x030,
			mode:      "Immediate addressing",
			target:    0x30,
			trace:     "Immediate addressing = 0x0030",
			hasTarget: true,
		},
		{
			name:      "sic format",
			hex:       "003600",
			format:    Format3,
			machine:   MachineSIC,
			nixbpe:    "000011",
			disp:      0x600,
			mode:      "SIC format, PC-relative",
			target:    0x3600,
			trace:     "SIC format (15bit address) = 0x3600",
			value:     0x103000,
			hasValue:  true,
			hasTarget: true,
		},
		{
			name:      "extended",
			hex:       "0310C303",
			format:    Format4,
			machine:   MachineSICXE,
			nixbpe:    "110001",
			disp:      0x0C303,
			mode:      "Simple addressing, Extended",
			target:    0x0C303,
			trace:     "Extended addressing (20bit) = 0x0C303",
			value:     0x003030,
			hasValue:  true,
			hasTarget: true,
		},
		{
			name:      "simple with pc and base relative set",
			hex:       "036000",
			format:    Format3,
			machine:   MachineSICXE,
			nixbpe:    "110110",
			disp:      0x000,
			mode:      "Simple addressing, PC-relative, Base-relative",
			hasTarget: false,
		},
		{
			name:      "indirect without pc relative",
			hex:       "020030",
			format:    Format3,
			machine:   MachineSICXE,
			nixbpe:    "100000",
			disp:      0x030,
			mode:      "Indirect addressing",
			hasTarget: false,
		},
	}

	dec := newTestDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := dec.Decode(tt.hex, testRegisters)
			assert.NoError(t, err)

			assert.Equal(t, tt.format, ins.Format)
			assert.Equal(t, tt.machine, ins.Machine)
			assert.Equal(t, tt.nixbpe, ins.Flags.String())
			assert.Equal(t, tt.disp, ins.Displacement)
			assert.Equal(t, tt.mode, ins.Mode)
			assert.Equal(t, uint8(0x00), ins.Opcode)
			assert.Equal(t, "LDA", ins.Mnemonic)

			target, ok := ins.TargetAddress()
			assert.Equal(t, tt.hasTarget, ok)
			if !tt.hasTarget {
				assert.True(t, errors.Is(ins.Unresolved, ErrAmbiguousAddressingMode))
				assert.Equal(t, "", ins.Trace)
				assert.False(t, ins.HasValue)
				return
			}

			assert.Nil(t, ins.Unresolved)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.trace, ins.Trace)

			value, ok := ins.MemoryValue()
			assert.Equal(t, tt.hasValue, ok)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		err  error
	}{
		{"empty", "", ErrUnsupportedLength},
		{"too short", "0326", ErrUnsupportedLength},
		{"odd length", "03260", ErrUnsupportedLength},
		{"seven digits", "0310C30", ErrUnsupportedLength},
		{"too long", "0310C30300", ErrUnsupportedLength},
		{"non hex", "03G600", ErrInvalidHexInput},
		{"prefix", "0x2600", ErrInvalidHexInput},
		{"whitespace", " 32600", ErrInvalidHexInput},
		{"non hex wrong length", "xyz", ErrInvalidHexInput},
	}

	dec := newTestDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := dec.Decode(tt.hex, testRegisters)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))
			assert.True(t, ins == nil)
		})
	}
}

func TestDecode_RelativeNegativeDisplacement(t *testing.T) {
	dec := newTestDecoder(t)

	ins, err := dec.Decode("032FFF", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), ins.SignedDisplacement)
	assert.Equal(t, uint32(0x2FFF), ins.Target)
	assert.Equal(t, "PC-relative: PC(0x3000) + disp(-1) = 0x2FFF", ins.Trace)

	ins, err = dec.Decode("034800", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, int32(-2048), ins.SignedDisplacement)
	assert.Equal(t, uint32(0x5800), ins.Target)
}

func TestDecode_AddressWrapsTo24Bits(t *testing.T) {
	dec := newTestDecoder(t)

	ins, err := dec.Decode("032FFF", Registers{PC: 0, B: 0, X: 0})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFF), ins.Target)
}

func TestDecode_ImmediateNeverNegative(t *testing.T) {
	dec := newTestDecoder(t)

	ins, err := dec.Decode("010FFF", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), ins.SignedDisplacement)
	assert.Equal(t, uint32(0xFFF), ins.Target)
}

func TestDecode_IndexingAppliesToEveryMode(t *testing.T) {
	tests := []struct {
		name     string
		plain    string
		indexed  string
		expected uint32
	}{
		{"sic format", "003600", "00B600", 0x3600},
		{"pc relative", "032600", "03A600", 0x3600},
		{"base relative", "034300", "03C300", 0x6300},
		{"direct", "030030", "038030", 0x0030},
		{"indirect", "022030", "02A030", 0x3600},
		{"immediate", "010030", "018030", 0x0030},
	}

	dec := newTestDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, err := dec.Decode(tt.plain, testRegisters)
			assert.NoError(t, err)
			indexed, err := dec.Decode(tt.indexed, testRegisters)
			assert.NoError(t, err)

			assert.Equal(t, tt.expected, plain.Target)
			assert.Equal(t, plain.Target+testRegisters.X, indexed.Target)
			assert.True(t, indexed.Flags.X)
		})
	}
}

func TestDecode_Format4IgnoresRegisters(t *testing.T) {
	dec := newTestDecoder(t)

	ins, err := dec.Decode("03B0C303", testRegisters)
	assert.NoError(t, err)
	assert.True(t, ins.Flags.X)
	assert.Equal(t, uint32(0x0C303), ins.Target)
	assert.Equal(t, "Simple addressing, Extended, Indexed", ins.Mode)
	assert.Equal(t, int32(0x0C303), ins.SignedDisplacement)
}

func TestDecode_Idempotent(t *testing.T) {
	dec := newTestDecoder(t)

	first, err := dec.Decode("03C300", testRegisters)
	assert.NoError(t, err)
	second, err := dec.Decode("03c300", testRegisters)
	assert.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.Equal(t, "03C300", second.Hex)
}

func TestDecode_AlternateTables(t *testing.T) {
	opcodes := OpcodeTable{0x00: "LDA", 0x04: "LDX", 0x0C: "STA"}
	memory := MemoryMap{0x3600: 0xABCDEF}
	dec := New(log.NewTestLogger(t), opcodes, memory)

	ins, err := dec.Decode("072600", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x04), ins.Opcode)
	assert.Equal(t, "LDX", ins.Mnemonic)
	assert.Equal(t, uint32(0xABCDEF), ins.Value)

	ins, err = dec.Decode("FF2600", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xFC), ins.Opcode)
	assert.Equal(t, UnknownMnemonic, ins.Mnemonic)
}

func TestInstruction_Rendering(t *testing.T) {
	dec := newTestDecoder(t)

	ins, err := dec.Decode("022030", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, "0000 0010 0010 0000 0011 0000", ins.Binary())
	assert.Equal(t, 29, len(ins.Binary()))
	assert.Equal(t, "0000 0011 0000", ins.FieldBinary())
	assert.Equal(t, "30", ins.FieldHex())
	assert.Equal(t, "000000", ins.OpcodeHex())

	ins, err = dec.Decode("0310C303", testRegisters)
	assert.NoError(t, err)
	assert.Equal(t, "0000 0011 0001 0000 1100 0011 0000 0011", ins.Binary())
	assert.Equal(t, "0000 1100 0011 0000 0011", ins.FieldBinary())
	assert.Equal(t, "C303", ins.FieldHex())
}
