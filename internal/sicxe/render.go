package sicxe

import (
	"fmt"
	"strings"
)

// GroupBits renders the lowest width bits of value in binary, grouped in
// clusters of 4 bits separated by a space. Width is expected to be a
// multiple of 4.
func GroupBits(value uint32, width int) string {
	bits := fmt.Sprintf("%0*b", width, uint64(value)&(1<<width-1))

	var sb strings.Builder
	for i := 0; i < len(bits); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(bits[i:min(i+4, len(bits))])
	}
	return sb.String()
}
