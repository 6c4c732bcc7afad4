// Package bitedit provides per-bit toggle controls for the input port and
// for program memory.
//
// Each editable byte is shown as a row of independent controls, most
// significant bit first. A control remembers the value it was built with;
// activating it yields an Intent that carries that displayed value, and the
// edit is applied by negating it. If the byte changed after the control was
// built, the intent still flips what the operator last saw.
package bitedit
