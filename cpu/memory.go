package cpu

import (
	"slices"
)

const (
	MEMORY_SIZE = 16 // Words addressable by the 4-bit program counter.
)

// Memory is the program memory. Each byte is one encoded instruction.
type Memory []uint8

// NewMemory creates a zero filled (all ADD A,0) program memory.
func NewMemory() Memory {
	return make(Memory, MEMORY_SIZE)
}

// Load copies an image into memory, starting at address 0. Words past the
// end of the image are cleared.
func (mem Memory) Load(image []uint8) (err error) {
	if len(image) > len(mem) {
		err = ErrImageSize
		return
	}

	n := copy(mem, image)
	clear(mem[n:])

	return
}

// Clone returns an independent copy of the memory.
func (mem Memory) Clone() Memory {
	return slices.Clone(mem)
}

// Fetch returns the word at the program counter. Addresses past the end of
// memory read as zero.
func (mem Memory) Fetch(pc uint8) uint8 {
	if int(pc) >= len(mem) {
		return 0
	}
	return mem[pc]
}

// Check returns an error if addr is not a valid address.
func (mem Memory) Check(addr int) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress{Address: addr, Size: len(mem)}
	}
	return
}
