package vars

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	stdbits "github.com/consensys/gnark/std/math/bits"
)

// U32 is a 32-bit unsigned integer in the circuit, backed by a single field
// element. A value produced by Encode (or adopted from a known-valid source)
// is guaranteed to lie in [0, 2^32-1]; adopting an arbitrary wire through
// FromVariables gives no such guarantee until it is encoded.
type U32 struct {
	v Variable
}

// u32ByteLen is the width of the EVM byte form of a U32.
const u32ByteLen = 4

var (
	_ CircuitVariable[U32, uint32] = U32{}
	_ EvmVariable[U32, uint32]     = U32{}
)

// Init allocates the backing Variable from the builder's free pool.
func (U32) Init(b *Builder) U32 {
	return U32{v: b.initVariable()}
}

// Constant fixes the value as a circuit-time literal.
func (U32) Constant(_ *Builder, v uint32) U32 {
	return U32{v: Variable{wire: uint64(v), slot: noSlot}}
}

// Variables returns the single backing Variable.
func (x U32) Variables() []Variable { return []Variable{x.v} }

// FromVariables adopts exactly one backing Variable.
func (U32) FromVariables(vs []Variable) U32 {
	if len(vs) != 1 {
		panic(fmt.Sprintf("vars: U32 is backed by 1 variable, got %d", len(vs)))
	}
	return U32{v: vs[0]}
}

// Get reads the witness value back under canonical reduction. The mapping
// is range-free: canonical reduction is injective on [0, 2^32-1] for any
// field wider than 32 bits.
func (x U32) Get(a *Assignment) (uint32, error) {
	val, err := x.v.Get(a)
	if err != nil {
		return 0, err
	}
	return uint32(val.Uint64()), nil
}

// Set binds v to the backing Variable's witness slot.
func (x U32) Set(a *Assignment, v uint32) error {
	return x.v.Set(a, new(big.Int).SetUint64(uint64(v)))
}

// NewU32Witness claims the next witness slot for a U32 whose circuit-side
// twin is produced by Init inside Define. Claim order must match the
// circuit's Init order.
func NewU32Witness(a *Assignment) U32 {
	return U32{v: Variable{slot: a.alloc()}}
}

// Encode splits the backing field element into its big-endian EVM byte
// form: 4 Bytes, most-significant first, each byte most-significant-bit
// first. The 32-bit decomposition asserts that the weighted sum of the bits
// reconstructs the element, which is exactly the range check: requesting 32
// bits bounds the value below 2^32.
func (x U32) Encode(b *Builder) []Byte {
	bits := b.api.ToBinary(x.v.wire, 32) // LSB first, every bit validated
	out := make([]Byte, u32ByteLen)
	for i := 0; i < u32ByteLen; i++ {
		group := bits[(u32ByteLen-1-i)*8 : (u32ByteLen-i)*8]
		var msb [8]Bit
		for j := 0; j < 8; j++ {
			msb[j] = validatedBit(group[7-j])
		}
		out[i] = NewByte(msb)
	}
	return out
}

// Decode recomposes a U32 from exactly 4 Bytes, most-significant first.
// Byte bits are validated by construction, so the weighted sum adds no
// boolean constraints. Decode(Encode(x)) reproduces x's field element.
func (U32) Decode(b *Builder, bts []Byte) U32 {
	if len(bts) != u32ByteLen {
		panic(fmt.Sprintf("vars: U32 decodes from %d bytes, got %d", u32ByteLen, len(bts)))
	}
	lsb := make([]frontend.Variable, 0, u32ByteLen*8)
	for i := u32ByteLen - 1; i >= 0; i-- {
		for j := 7; j >= 0; j-- {
			lsb = append(lsb, bts[i].Bit(j).Wire())
		}
	}
	sum := stdbits.FromBinary(b.api, lsb, stdbits.WithUnconstrainedInputs())
	return U32{v: Variable{wire: sum, slot: noSlot}}
}

// EncodeValue returns v's big-endian byte representation.
func (U32) EncodeValue(v uint32) []byte {
	out := make([]byte, u32ByteLen)
	for i := 0; i < u32ByteLen; i++ {
		out[i] = byte(v >> (8 * (u32ByteLen - 1 - i)))
	}
	return out
}

// DecodeValue is the inverse of EncodeValue. It panics unless given exactly
// 4 bytes.
func (U32) DecodeValue(p []byte) uint32 {
	if len(p) != u32ByteLen {
		panic(fmt.Sprintf("vars: U32 decodes from %d bytes, got %d", u32ByteLen, len(p)))
	}
	var v uint32
	for i := 0; i < u32ByteLen; i++ {
		v |= uint32(p[i]) << (8 * (u32ByteLen - 1 - i))
	}
	return v
}
