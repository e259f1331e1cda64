package sicxe

import "errors"

var (
	// ErrInvalidHexInput is returned when the input contains non hexadecimal characters.
	ErrInvalidHexInput = errors.New("invalid hex input")
	// ErrUnsupportedLength is returned when the input is not 6 or 8 hex digits long.
	ErrUnsupportedLength = errors.New("unsupported instruction length")
	// ErrAmbiguousAddressingMode marks a decoded instruction whose addressing bit
	// combination has no target address rule. It is never returned by Decode,
	// it is carried in Instruction.Unresolved instead.
	ErrAmbiguousAddressingMode = errors.New("no rule for addressing mode")
)
