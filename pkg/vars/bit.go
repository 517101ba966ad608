package vars

import (
	"github.com/consensys/gnark/frontend"
)

// Bit is a Variable whose bound value is always 0 or 1. The invariant is
// enforced by the constraint system when the bit is minted, not by the type.
type Bit struct {
	v Variable
}

// NewBit mints a Bit from an unconstrained Variable, asserting 0-or-1.
func NewBit(b *Builder, v Variable) Bit {
	b.api.AssertIsBoolean(v.wire)
	return Bit{v: v}
}

// validatedBit wraps a wire the constraint system has already proven
// boolean, e.g. a range-decomposition output. No assertion is added.
func validatedBit(w frontend.Variable) Bit {
	return Bit{v: Variable{wire: w, slot: noSlot}}
}

// Variable returns the Bit's backing Variable.
func (b Bit) Variable() Variable { return b.v }

// Wire returns the underlying wire.
func (b Bit) Wire() frontend.Variable { return b.v.wire }
