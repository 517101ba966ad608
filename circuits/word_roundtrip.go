package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/evmvars/pkg/vars"
)

// U32RoundTripCircuit checks the byte-encoding layer end to end: the public
// word encodes to the public big-endian bytes, and decoding those bytes
// yields the same field element again.
type U32RoundTripCircuit struct {
	Word  frontend.Variable    `gnark:",public"`
	Bytes [4]frontend.Variable `gnark:",public"`
}

func (c *U32RoundTripCircuit) Define(api frontend.API) error {
	b := vars.NewBuilder(api, nil)

	word := vars.FromVariables[vars.U32, uint32]([]vars.Variable{vars.FromWire(c.Word)})
	enc := word.Encode(b) // range-checks Word to 32 bits
	for i := range enc {
		api.AssertIsEqual(enc[i].Value(b), c.Bytes[i])
	}

	dec := vars.U32{}.Decode(b, enc)
	b.AssertIsEqual(dec.Variables()[0], word.Variables()[0])
	return nil
}
