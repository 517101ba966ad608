package vars_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/evmvars/pkg/vars"
)

func TestU32EncodeValueVectors(t *testing.T) {
	vec := []struct {
		id   string
		v    uint32
		want []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"evm", 0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
		{"max", 0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tc := range vec {
		got := vars.U32{}.EncodeValue(tc.v)
		require.Equal(t, tc.want, got, tc.id)
		require.Equal(t, tc.v, vars.U32{}.DecodeValue(got), tc.id)
	}
}

func TestU32EncodeValueIsBigEndian(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xFF, 0x100, 0x8000_0000, 0xDEADBEEF, 0xFFFFFFFF} {
		want := make([]byte, 4)
		binary.BigEndian.PutUint32(want, v)

		got := vars.U32{}.EncodeValue(v)
		require.Len(t, got, 4)
		require.Equal(t, want, got)
		require.Equal(t, v, vars.U32{}.DecodeValue(got))
	}
}

func TestU32DecodeValueArity(t *testing.T) {
	require.Panics(t, func() { vars.U32{}.DecodeValue(nil) })
	require.Panics(t, func() { vars.U32{}.DecodeValue([]byte{1, 2, 3}) })
	require.Panics(t, func() { vars.U32{}.DecodeValue(make([]byte, 5)) })
}

func TestU32FromVariablesArity(t *testing.T) {
	require.Panics(t, func() { vars.U32{}.FromVariables(nil) })
	require.Panics(t, func() { vars.U32{}.FromVariables(make([]vars.Variable, 2)) })
}

func TestAssignmentSetGet(t *testing.T) {
	asg := vars.NewAssignment(ecc.BN254.ScalarField())
	w := vars.NewU32Witness(asg)

	_, err := w.Get(asg)
	require.Error(t, err, "read before assignment must fail")

	require.NoError(t, w.Set(asg, 0x12345678))

	got, err := w.Get(asg)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), got)

	require.Error(t, w.Set(asg, 1), "second assignment must fail")
}

func TestAssignmentNotWitnessBacked(t *testing.T) {
	asg := vars.NewAssignment(ecc.BN254.ScalarField())

	// a wire adopted from the circuit has no witness slot
	v := vars.FromWire(nil)
	_, err := v.Get(asg)
	require.Error(t, err)
	require.Error(t, v.Set(asg, big.NewInt(1)))
}

func TestAssignmentPool(t *testing.T) {
	asg := vars.NewAssignment(ecc.BN254.ScalarField())
	w := vars.NewU32Witness(asg)

	_, err := asg.Pool(1)
	require.Error(t, err, "unassigned slot must not materialise")

	require.NoError(t, w.Set(asg, 7))
	pool, err := asg.Pool(1)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	require.Equal(t, big.NewInt(7), pool[0])

	w2 := vars.NewU32Witness(asg)
	require.NoError(t, w2.Set(asg, 8))
	_, err = asg.Pool(1)
	require.Error(t, err, "pool smaller than allocation count must fail")
}

func TestAssignmentCanonicalReduction(t *testing.T) {
	field := ecc.BN254.ScalarField()
	asg := vars.NewAssignment(field)
	w := vars.NewU32Witness(asg)

	// values are stored as canonical representatives
	raw := new(big.Int).Add(field, big.NewInt(42))
	require.NoError(t, w.Variables()[0].Set(asg, raw))

	got, err := w.Get(asg)
	require.NoError(t, err)
	require.Equal(t, uint32(42), got)
}
