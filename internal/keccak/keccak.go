package keccak

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/sha3"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/yourorg/evmvars/pkg/vars"
)

// Digest returns the in-circuit Keccak256 digest of the given bytes, one
// field element per digest byte. Each input byte is packed from its
// validated bits, so no extra range checks are needed on the way in.
func Digest(b *vars.Builder, in []vars.Byte) [32]frontend.Variable {
	h, err := sha3.NewLegacyKeccak256(b.API())
	if err != nil {
		panic(err)
	}

	u8s := make([]uints.U8, len(in))
	for i := range in {
		u8s[i] = uints.U8{Val: in[i].Value(b)}
	}
	h.Write(u8s)

	var out [32]frontend.Variable
	for i, d := range h.Sum() {
		out[i] = d.Val
	}
	return out
}
