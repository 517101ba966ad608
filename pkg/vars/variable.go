// Package vars provides typed circuit variables backed by single field
// elements, together with their conversion to and from the big-endian byte
// form used by the EVM word format. The constraint system itself is gnark's;
// this package only builds on its frontend primitives.
package vars

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// Variable is the atomic storage unit: a reference to exactly one field
// element inside the constraint system. Variables created through Init carry
// a witness slot so their value can be bound once per proving run; constants
// and wires derived in-circuit carry no slot.
type Variable struct {
	wire frontend.Variable
	slot int
}

const noSlot = -1

// FromWire adopts an existing circuit wire, typically a host-circuit input,
// as a Variable.
func FromWire(w frontend.Variable) Variable {
	return Variable{wire: w, slot: noSlot}
}

// Wire returns the underlying constraint-system wire.
func (v Variable) Wire() frontend.Variable { return v.wire }

// Get reads the bound field element back from the witness. It fails if the
// variable is not witness-backed or its slot was never assigned.
func (v Variable) Get(a *Assignment) (*big.Int, error) {
	return a.value(v.slot)
}

// Set binds val to the variable's witness slot, at most once per proving
// run. val is reduced to its canonical representative.
func (v Variable) Set(a *Assignment, val *big.Int) error {
	return a.set(v.slot, val)
}
