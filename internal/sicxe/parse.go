package sicxe

import (
	"fmt"
	"strconv"
)

// ParseHex parses an encoded instruction. The number of hex digits selects
// the instruction format: 6 digits for format 3, 8 digits for format 4.
func ParseHex(s string) (uint32, Format, error) {
	for i := range len(s) {
		if !isHexDigit(s[i]) {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexInput, s)
		}
	}

	var format Format
	switch len(s) {
	case Format3.HexDigits():
		format = Format3
	case Format4.HexDigits():
		format = Format4
	default:
		return 0, 0, fmt.Errorf("%w: %d hex digits, expected 6 or 8", ErrUnsupportedLength, len(s))
	}

	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidHexInput, err)
	}
	return uint32(value), format, nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
