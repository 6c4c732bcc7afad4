package bitedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_Twice(t *testing.T) {
	assert := assert.New(t)

	for value := range 256 {
		b := uint8(value)
		for bit := range uint(BYTE_BITS) {
			once := Toggle(b, bit, Bit(b, bit))
			twice := Toggle(once, bit, Bit(once, bit))
			assert.Equal(b, twice, "value 0x%02x bit %d", b, bit)
		}
	}
}

func TestToggle_OtherBits(t *testing.T) {
	assert := assert.New(t)

	for value := range 256 {
		b := uint8(value)
		for bit := range uint(BYTE_BITS) {
			mask := ^uint8(1 << bit)
			for _, previous := range []bool{false, true} {
				edited := Toggle(b, bit, previous)
				assert.Equal(b&mask, edited&mask)
				assert.Equal(!previous, Bit(edited, bit))
			}
		}
	}
}

func TestToggle_StaleValue(t *testing.T) {
	assert := assert.New(t)

	// The bit is already set, but the control still showed it clear:
	// the edit applies the negation of what was shown.
	assert.Equal(uint8(0b0001), Toggle(0b0001, 0, false))
	assert.Equal(uint8(0b0000), Toggle(0b0000, 0, true))
}

func TestIntent_Check(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Intent{Target: TARGET_INPUT, Bit: 3}.Check())
	assert.Equal(ErrBitRange{Bit: 4, Width: 4}, Intent{Target: TARGET_INPUT, Bit: 4}.Check())
	assert.NoError(Intent{Target: TARGET_MEMORY, Address: 2, Bit: 7}.Check())
	assert.Error(Intent{Target: TARGET_MEMORY, Bit: 8}.Check())
}

func TestIntent_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("input.2 (was 1)", Intent{Target: TARGET_INPUT, Bit: 2, Previous: true}.String())
	assert.Equal("memory[3].4 (was 0)", Intent{Target: TARGET_MEMORY, Address: 3, Bit: 4}.String())
}
