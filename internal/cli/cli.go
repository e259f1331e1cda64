// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/sicxedecode/internal/options"
	"github.com/retroenv/sicxedecode/internal/sicxe"
)

// ParseFlags parses command line flags and returns the program options.
// Without hex codes and batch file the program reads codes interactively.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	args := flags.Args()

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Codes = args
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: sicxedecode [options] [hex code ...]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after hex code, please pass all options before the hex codes", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Language = strings.TrimSpace(opts.Language)

	var err error
	if opts.Overrides.PC, err = parseRegister("pc", opts.PC); err != nil {
		return err
	}
	if opts.Overrides.Base, err = parseRegister("base", opts.Base); err != nil {
		return err
	}
	if opts.Overrides.Index, err = parseRegister("x", opts.Index); err != nil {
		return err
	}
	return nil
}

// parseRegister parses a 24-bit register value given in hex with an optional
// 0x prefix. An empty value returns nil to keep the register default.
func parseRegister(name, value string) (*uint32, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	reg, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s register value '%s': %w", name, value, err)
	}
	if reg > sicxe.AddressMask {
		return nil, fmt.Errorf("invalid %s register value '%s': exceeds 24 bits", name, value)
	}

	result := uint32(reg)
	return &result, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Profile, "profile", "", "TOML machine profile with opcodes, memory and registers")
	flags.StringVar(&opts.Batch, "batch", "", "Starlark case file with instructions to decode")
	flags.StringVar(&opts.PC, "pc", "", "program counter in hex (default: profile or 003000)")
	flags.StringVar(&opts.Base, "base", "", "base register in hex (default: profile or 006000)")
	flags.StringVar(&opts.Index, "x", "", "index register in hex (default: profile or 000090)")
	flags.StringVar(&opts.Language, "lang", "", "report language, for example en-US or ko-KR (default: system locale)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
