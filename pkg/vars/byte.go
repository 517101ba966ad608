package vars

import (
	"github.com/consensys/gnark/frontend"
	stdbits "github.com/consensys/gnark/std/math/bits"
)

// Byte aggregates eight already-validated Bits. Bit index 0 is the byte's
// most-significant bit; the byte-encoding path and the EVM word layout both
// rely on this convention.
type Byte struct {
	bits [8]Bit
}

// NewByte groups eight validated Bits, most-significant first. No constraint
// is added: the byte's validity is exactly the conjunction of its bits'.
func NewByte(bits [8]Bit) Byte { return Byte{bits: bits} }

// ConstantByte fixes all eight bits of v as circuit-time constants.
func ConstantByte(_ *Builder, v uint8) Byte {
	var bits [8]Bit
	for i := 0; i < 8; i++ {
		bits[i] = validatedBit(frontend.Variable((v >> (7 - i)) & 1))
	}
	return Byte{bits: bits}
}

// Bit returns the i-th bit, counting from the most significant.
func (by Byte) Bit(i int) Bit { return by.bits[i] }

// Bits returns the bits most-significant first.
func (by Byte) Bits() [8]Bit { return by.bits }

// Value packs the byte into a single field element in [0, 255]. The bits
// are validated by construction, so the weighted sum needs no fresh boolean
// constraints.
func (by Byte) Value(b *Builder) frontend.Variable {
	lsb := make([]frontend.Variable, 8)
	for i := 0; i < 8; i++ {
		lsb[i] = by.bits[7-i].Wire()
	}
	return stdbits.FromBinary(b.api, lsb, stdbits.WithUnconstrainedInputs())
}
