package witness

import (
	backendwitness "github.com/consensys/gnark/backend/witness"
)

type PublicInputs struct {
	Digest string `json:"digest"` // keccak256 of the word's EVM encoding, 0x-hex
}

type Bundle struct {
	Full   backendwitness.Witness
	Public PublicInputs
}
