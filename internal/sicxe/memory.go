package sicxe

// Memory is a read only view of addressable machine memory.
type Memory interface {
	// Read returns the word stored at the address and whether the address
	// holds a known value.
	Read(address uint32) (uint32, bool)
}

var _ Memory = MemoryMap(nil)

// MemoryMap is a sparse memory that maps addresses to 24-bit words.
type MemoryMap map[uint32]uint32

// Read implements Memory.
func (m MemoryMap) Read(address uint32) (uint32, bool) {
	value, ok := m[address]
	return value, ok
}
