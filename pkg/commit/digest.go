package commit

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/yourorg/evmvars/pkg/vars"
)

// Digest returns keccak256 of word's big-endian EVM encoding. This is the
// off-circuit reference for WordCommitCircuit's public digest.
func Digest(word uint32) common.Hash {
	return crypto.Keccak256Hash(vars.U32{}.EncodeValue(word))
}
