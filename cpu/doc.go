// Package cpu holds the programmer-visible state of the TD4 4-bit processor,
// its program memory, and the stepping engine that advances it.
//
// The TD4 has two 4-bit registers (A and B), a 4-bit program counter, a
// carry flag, a 4-bit input port and a 4-bit output port. Program memory is
// sixteen 8-bit words; the upper nibble of each word selects the operation
// and the lower nibble is the immediate operand.
//
// Callers that drive the processor only rely on the Stepper contract: one
// call performs one fetch/decode/execute cycle against a mutable State and
// returns the next program counter.
package cpu
