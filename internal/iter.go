package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterBits yields the bit number and state of the low width bits of value,
// most significant bit first.
func IterBits(value uint8, width int) iter.Seq2[uint, bool] {
	return func(yield func(uint, bool) bool) {
		for bit := width - 1; bit >= 0; bit-- {
			if !yield(uint(bit), (value>>bit)&1 != 0) {
				return
			}
		}
	}
}
