package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/evmvars/internal/keccak"
	"github.com/yourorg/evmvars/pkg/vars"
)

// WordCommitFreeVars is the free-variable pool size of WordCommitCircuit:
// one slot, the committed word itself.
const WordCommitFreeVars = 1

// WordCommitCircuit proves knowledge of a 32-bit word whose big-endian EVM
// encoding hashes to the public Keccak256 digest.
type WordCommitCircuit struct {
	Free   [WordCommitFreeVars]frontend.Variable
	Digest [32]frontend.Variable `gnark:",public"`
}

func (c *WordCommitCircuit) Define(api frontend.API) error {
	b := vars.NewBuilder(api, c.Free[:])

	word := vars.Init[vars.U32, uint32](b)
	enc := word.Encode(b) // range-checks Free[0] to 32 bits
	digest := keccak.Digest(b, enc)
	for i := range digest {
		api.AssertIsEqual(digest[i], c.Digest[i])
	}
	return nil
}
