package bitedit

import (
	"iter"
	"slices"

	"github.com/ezrec/td4/internal"
)

// MemoryTable holds one ByteEditor per program memory address.
type MemoryTable struct {
	editors []*ByteEditor
}

// NewMemoryTable creates a table for mem.
func NewMemoryTable(mem []uint8) (mt *MemoryTable) {
	mt = &MemoryTable{}
	mt.Sync(mem)
	return
}

// Sync refreshes the displayed values from mem. When the length of mem
// differs from the table, every editor is discarded and rebuilt, and
// rebuilt is true.
func (mt *MemoryTable) Sync(mem []uint8) (rebuilt bool) {
	if len(mem) != len(mt.editors) {
		mt.editors = make([]*ByteEditor, len(mem))
		for addr, value := range mem {
			mt.editors[addr] = NewByteEditor(addr, value)
		}
		rebuilt = true
		return
	}

	for addr, value := range mem {
		mt.editors[addr].Update(value)
	}

	return
}

// Len is the number of addresses in the table.
func (mt *MemoryTable) Len() int {
	return len(mt.editors)
}

// Editor returns the editor for addr, or nil if there is none.
func (mt *MemoryTable) Editor(addr int) *ByteEditor {
	if addr < 0 || addr >= len(mt.editors) {
		return nil
	}
	return mt.editors[addr]
}

// Editors iterates over the editors in address order.
func (mt *MemoryTable) Editors() iter.Seq[*ByteEditor] {
	return slices.Values(mt.editors)
}

// Controls iterates over every control of every address, in address order
// and most significant bit first within an address.
func (mt *MemoryTable) Controls() iter.Seq[Control] {
	seqs := make([]iter.Seq[Control], 0, len(mt.editors))
	for _, ed := range mt.editors {
		seqs = append(seqs, slices.Values(ed.Controls()))
	}
	return internal.IterSeqConcat(seqs...)
}

// Activate activates the control for bit of addr.
func (mt *MemoryTable) Activate(addr int, bit uint) (in Intent, err error) {
	ed := mt.Editor(addr)
	if ed == nil {
		err = ErrAddressRange{Address: addr, Size: len(mt.editors)}
		return
	}

	return ed.Activate(bit)
}

// Clone returns a deep copy of the table.
func (mt *MemoryTable) Clone() (dup *MemoryTable) {
	dup = &MemoryTable{
		editors: make([]*ByteEditor, len(mt.editors)),
	}
	for n, ed := range mt.editors {
		copied := *ed
		dup.editors[n] = &copied
	}
	return
}
