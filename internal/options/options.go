// Package options contains the program options.
package options

import "github.com/retroenv/sicxedecode/internal/sicxe"

// Parameters contains file path options.
type Parameters struct {
	Profile string `flag:"profile" usage:"TOML machine profile with opcodes, memory and registers"`
	Batch   string `flag:"batch" usage:"Starlark case file with instructions to decode"`
}

// RegisterFlags contains the register values as given on the command line.
type RegisterFlags struct {
	PC    string `flag:"pc" usage:"program counter in hex (default: profile or 003000)"`
	Base  string `flag:"base" usage:"base register in hex (default: profile or 006000)"`
	Index string `flag:"x" usage:"index register in hex (default: profile or 000090)"`
}

// Flags contains behavior options.
type Flags struct {
	Language string `flag:"lang" usage:"report language, for example en-US or ko-KR (default: system locale)"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	RegisterFlags
	Flags

	Codes     []string  // hex codes passed as positional arguments
	Overrides Overrides // parsed register flags
}

// Interactive returns whether hex codes are read from the prompt, which is
// the case when neither codes nor a batch file were given.
func (p Program) Interactive() bool {
	return p.Batch == "" && len(p.Codes) == 0
}

// Overrides contains the registers that were set explicitly on the command line.
type Overrides struct {
	PC    *uint32
	Base  *uint32
	Index *uint32
}

// Apply returns the registers with all set overrides applied.
func (o Overrides) Apply(regs sicxe.Registers) sicxe.Registers {
	if o.PC != nil {
		regs.PC = *o.PC
	}
	if o.Base != nil {
		regs.B = *o.Base
	}
	if o.Index != nil {
		regs.X = *o.Index
	}
	return regs
}
