package cpu

import (
	"fmt"
	"strings"
)

// Op is the operation selected by the upper nibble of an instruction word.
type Op uint8

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD_A   = Op(0x0) // ADD A,Im
	OP_MOV_AB  = Op(0x1) // MOV A,B
	OP_IN_A    = Op(0x2) // IN A
	OP_MOV_A   = Op(0x3) // MOV A,Im
	OP_MOV_BA  = Op(0x4) // MOV B,A
	OP_ADD_B   = Op(0x5) // ADD B,Im
	OP_IN_B    = Op(0x6) // IN B
	OP_MOV_B   = Op(0x7) // MOV B,Im
	OP_OUT_B_X = Op(0x8) // OUT B*
	OP_OUT_B   = Op(0x9) // OUT B
	OP_OUT_X   = Op(0xa) // OUT Im*
	OP_OUT     = Op(0xb) // OUT Im
	OP_JNC_B_X = Op(0xc) // JNC B*
	OP_JMP_B_X = Op(0xd) // JMP B*
	OP_JNC     = Op(0xe) // JNC Im
	OP_JMP     = Op(0xf) // JMP Im
)

// Undocumented reports whether the operation is outside of the published
// instruction set. Undocumented words still execute through the data path.
func (op Op) Undocumented() bool {
	return strings.HasSuffix(op.String(), "*")
}

// Decode splits an instruction word into its operation and immediate.
func Decode(code uint8) (op Op, imm uint8) {
	op = Op(code >> 4)
	imm = code & NIBBLE_MASK
	return
}

// Disassemble renders an instruction word as assembly text.
func Disassemble(code uint8) (text string) {
	op, imm := Decode(code)

	text = op.String()
	if strings.Contains(text, "Im") {
		text = strings.Replace(text, "Im", fmt.Sprintf("%d", imm), 1)
	} else if imm != 0 {
		text = fmt.Sprintf("%v+%d", text, imm)
	}

	return
}
