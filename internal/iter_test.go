package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var got []int
	for v := range IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{3, 4})) {
		got = append(got, v)
		if v == 3 {
			break
		}
	}
	assert.Equal([]int{1, 2, 3}, got)
}

func TestIterBits(t *testing.T) {
	assert := assert.New(t)

	var bits []uint
	var states []bool
	for bit, on := range IterBits(0b1010_0110, 8) {
		bits = append(bits, bit)
		states = append(states, on)
	}
	assert.Equal([]uint{7, 6, 5, 4, 3, 2, 1, 0}, bits)
	assert.Equal([]bool{true, false, true, false, false, true, true, false}, states)

	bits = nil
	for bit := range IterBits(0xff, 4) {
		bits = append(bits, bit)
		if bit == 2 {
			break
		}
	}
	assert.Equal([]uint{3, 2}, bits)

	for range IterBits(0xff, 0) {
		assert.Fail("no bits")
	}
}
