package vars

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// Assignment is the witness plane of the typed-variable layer: concrete
// field elements for the free variables of one proving run, keyed by
// allocation slot. Slot order mirrors the Builder's Init order inside
// Define, so a variable claimed here binds the wire the circuit
// initialised at the same position.
//
// An Assignment belongs to a single proving run and must not be mutated
// concurrently.
type Assignment struct {
	field *big.Int
	slots []*big.Int
}

// NewAssignment creates an empty witness store over the given scalar-field
// modulus, e.g. circuits.Curve().ScalarField().
func NewAssignment(field *big.Int) *Assignment {
	return &Assignment{field: new(big.Int).Set(field)}
}

// alloc claims the next witness slot, mirroring Builder.initVariable.
func (a *Assignment) alloc() int {
	a.slots = append(a.slots, nil)
	return len(a.slots) - 1
}

func (a *Assignment) set(slot int, v *big.Int) error {
	if slot == noSlot || slot < 0 || slot >= len(a.slots) {
		return fmt.Errorf("vars: variable is not witness-backed")
	}
	if a.slots[slot] != nil {
		return fmt.Errorf("vars: witness slot %d assigned twice", slot)
	}
	a.slots[slot] = new(big.Int).Mod(v, a.field)
	return nil
}

func (a *Assignment) value(slot int) (*big.Int, error) {
	if slot == noSlot || slot < 0 || slot >= len(a.slots) {
		return nil, fmt.Errorf("vars: variable is not witness-backed")
	}
	if a.slots[slot] == nil {
		return nil, fmt.Errorf("vars: witness slot %d read before assignment", slot)
	}
	return new(big.Int).Set(a.slots[slot]), nil
}

// Pool materialises the assigned values as the host circuit's free wires.
// n is the pool length the circuit was compiled with; every claimed slot
// must be assigned and fit in n. Unclaimed tail slots are zero-filled.
func (a *Assignment) Pool(n int) ([]frontend.Variable, error) {
	if len(a.slots) > n {
		return nil, fmt.Errorf("vars: %d variables initialised but pool holds %d", len(a.slots), n)
	}
	out := make([]frontend.Variable, n)
	for i := range out {
		switch {
		case i >= len(a.slots):
			out[i] = 0
		case a.slots[i] == nil:
			return nil, fmt.Errorf("vars: witness slot %d left unassigned", i)
		default:
			out[i] = new(big.Int).Set(a.slots[i])
		}
	}
	return out, nil
}
