package witness

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/yourorg/evmvars/circuits"
	"github.com/yourorg/evmvars/pkg/commit"
	"github.com/yourorg/evmvars/pkg/vars"
)

// Build assembles the witness bundle for WordCommitCircuit: the secret word
// bound through the typed-variable layer plus the public digest.
func Build(word uint32) (*Bundle, error) {
	asg := vars.NewAssignment(circuits.Curve().ScalarField())

	// Mirror the circuit's allocation order: slot 0 is the word.
	w := vars.NewU32Witness(asg)
	if err := w.Set(asg, word); err != nil {
		return nil, fmt.Errorf("bind word: %w", err)
	}

	pool, err := asg.Pool(circuits.WordCommitFreeVars)
	if err != nil {
		return nil, fmt.Errorf("materialise free pool: %w", err)
	}

	assign := &circuits.WordCommitCircuit{}
	copy(assign.Free[:], pool)

	digest := commit.Digest(word)
	for i, b := range digest {
		assign.Digest[i] = b
	}

	full, err := frontend.NewWitness(assign, circuits.Curve().ScalarField())
	if err != nil {
		return nil, fmt.Errorf("build witness: %w", err)
	}

	return &Bundle{
		Full:   full,
		Public: PublicInputs{Digest: hexutil.Encode(digest[:])},
	}, nil
}
