package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTd4_Instructions(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		code  uint8
		state State
		pc    uint8
		want  State
	}){
		{"add_a", 0x03, State{A: 2, PC: 4}, 5, State{A: 5, PC: 4}},
		{"add_a_carry", 0x01, State{A: 0xf}, 1, State{A: 0, Carry: true}},
		{"mov_a_b", 0x10, State{A: 1, B: 9, Carry: true}, 1, State{A: 9, B: 9}},
		{"in_a", 0x20, State{In: 0xa}, 1, State{A: 0xa, In: 0xa}},
		{"mov_a_im", 0x37, State{A: 1}, 1, State{A: 7}},
		{"mov_b_a", 0x40, State{A: 6}, 1, State{A: 6, B: 6}},
		{"add_b", 0x52, State{B: 0xe}, 1, State{B: 0, Carry: true}},
		{"in_b", 0x60, State{In: 3}, 1, State{B: 3, In: 3}},
		{"mov_b_im", 0x7c, State{}, 1, State{B: 0xc}},
		{"out_b", 0x90, State{B: 5}, 1, State{B: 5, Out: 5}},
		{"out_im", 0xb6, State{}, 1, State{Out: 6}},
		{"jnc_taken", 0xe9, State{}, 9, State{}},
		{"jnc_not_taken", 0xe9, State{Carry: true}, 1, State{}},
		{"jmp", 0xf2, State{Carry: true}, 2, State{}},
		{"wrap", 0x00, State{PC: 15}, 0, State{PC: 15}},
	}

	for _, entry := range table {
		mem := NewMemory()
		mem[entry.state.PC] = entry.code

		td := &Td4{}
		st := entry.state
		pc := td.Step(&st, mem)

		assert.Equal(entry.pc, pc, entry.name)
		assert.Equal(entry.want, st, entry.name)
	}
}

func TestTd4_DoesNotWritePc(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem[3] = 0xf0

	st := State{PC: 3}
	pc := (&Td4{}).Step(&st, mem)

	assert.Equal(uint8(0), pc)
	assert.Equal(uint8(3), st.PC)
}

func TestTd4_Program(t *testing.T) {
	assert := assert.New(t)

	// Counts on the output port: OUT B, ADD B,1, JMP 0.
	mem := NewMemory()
	assert.NoError(mem.Load([]uint8{0x90, 0x51, 0xf0}))

	td := &Td4{}
	st := State{}
	for range 3 * 5 {
		st.PC = td.Step(&st, mem)
	}

	assert.Equal(uint8(4), st.Out)
	assert.Equal(uint8(5), st.B)
	assert.Equal(uint8(0), st.PC)
}
