package vars

// CircuitVariable is the typed-variable contract: any domain-specific
// variable type T with plain-value type V satisfies it to participate in
// the constraint system uniformly. Constructor-shaped operations (Init,
// Constant, FromVariables) hang off the zero value, the way gnark expresses
// static contracts through parameter types.
type CircuitVariable[T any, V any] interface {
	// Init allocates T's backing Variables from the builder's free pool
	// with unassigned witness values. Pure allocation, no constraints.
	Init(b *Builder) T
	// Constant fixes T's value to a circuit-time literal derived from v.
	Constant(b *Builder, v V) T
	// Variables returns the ordered Variables backing T. The order is part
	// of T's contract and stable.
	Variables() []Variable
	// FromVariables is the inverse of Variables. It panics when the
	// sequence length does not match T's arity.
	FromVariables(vs []Variable) T
	// Get reads the plain value back from a fully-assigned witness.
	Get(a *Assignment) (V, error)
	// Set binds v's field encoding to each backing Variable, at most once
	// per proving run.
	Set(a *Assignment, v V) error
}

// EvmVariable is the byte-encoding contract: conversion between T and the
// big-endian byte sequence the EVM word format expects, both symbolically
// in-circuit and concretely on plain values. It is independent of
// CircuitVariable so other widths can implement one without the other.
type EvmVariable[T any, V any] interface {
	// Encode decomposes T into Bytes, most-significant byte first. The
	// decomposition doubles as T's range check.
	Encode(b *Builder) []Byte
	// Decode reassembles T from its byte form, panicking on any length
	// other than T's encoded width.
	Decode(b *Builder, bts []Byte) T
	// EncodeValue is the plain-value mirror of Encode.
	EncodeValue(v V) []byte
	// DecodeValue is the plain-value mirror of Decode.
	DecodeValue(p []byte) V
}

// Init allocates a fresh T through its typed-variable contract.
func Init[T CircuitVariable[T, V], V any](b *Builder) T {
	var t T
	return t.Init(b)
}

// Constant builds a literal T through its typed-variable contract.
func Constant[T CircuitVariable[T, V], V any](b *Builder, v V) T {
	var t T
	return t.Constant(b, v)
}

// FromVariables rebuilds T from its backing Variables.
func FromVariables[T CircuitVariable[T, V], V any](vs []Variable) T {
	var t T
	return t.FromVariables(vs)
}
