package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/evmvars/pkg/vars"
)

func TestValueRoundTripVectors(t *testing.T) {
	vec := []struct {
		id   string
		v    uint32
		want []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"evm", 0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
		{"max", 0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"one", 1, []byte{0x00, 0x00, 0x00, 0x01}},
		{"high-bit", 0x80000000, []byte{0x80, 0x00, 0x00, 0x00}},
	}

	for _, tc := range vec {
		enc := vars.U32{}.EncodeValue(tc.v)
		require.Equal(t, tc.want, enc, tc.id)
		require.Equal(t, tc.v, vars.U32{}.DecodeValue(enc), tc.id)
	}
}

// cross-consistency: byte i of the plain encoding equals the shifted value
// the symbolic path exposes for that byte position
func TestValueEncodingCrossConsistency(t *testing.T) {
	for _, v := range []uint32{0, 0x12345678, 0xA5A5A5A5, 0xFFFFFFFF} {
		enc := vars.U32{}.EncodeValue(v)
		for i := 0; i < 4; i++ {
			require.Equal(t, byte(v>>(8*(3-i))), enc[i])
		}
	}
}
