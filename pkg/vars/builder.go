package vars

import (
	"github.com/consensys/gnark/frontend"
)

// Builder threads the constraint-system context through every construction
// call. It wraps the collaborator frontend.API together with the pool of
// host-circuit secret wires that back freshly initialised variables.
//
// A Builder belongs to a single Define invocation and is not safe for
// concurrent use.
type Builder struct {
	api  frontend.API
	pool []frontend.Variable
	next int
}

// NewBuilder wraps api for gadget construction. pool holds the host
// circuit's free wires consumed by Init, in allocation order; pass nil when
// the circuit initialises no free variables.
func NewBuilder(api frontend.API, pool []frontend.Variable) *Builder {
	return &Builder{api: api, pool: pool}
}

// API exposes the underlying frontend for gadget code that needs raw
// constraint-system primitives.
func (b *Builder) API() frontend.API { return b.api }

func (b *Builder) initVariable() Variable {
	if b.next >= len(b.pool) {
		panic("vars: free-variable pool exhausted; grow the host circuit's Free field")
	}
	v := Variable{wire: b.pool[b.next], slot: b.next}
	b.next++
	return v
}

// AssertIsEqual constrains x and y to hold the same field element.
func (b *Builder) AssertIsEqual(x, y Variable) {
	b.api.AssertIsEqual(x.wire, y.wire)
}
