package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/yourorg/evmvars/circuits"
	"github.com/yourorg/evmvars/pkg/witness"
)

func main() {
	var proofPath, publicPath, vkPath string

	cmd := &cobra.Command{
		Use:   "verifier",
		Short: "Verify Groth16 proof of a committed 32-bit word",
		RunE: func(cmd *cobra.Command, args []string) error {
			pBytes, _ := os.ReadFile(proofPath)
			vBytes, _ := os.ReadFile(vkPath)
			jBytes, _ := os.ReadFile(publicPath)

			var proof groth16.Proof
			_, _ = proof.ReadFrom(bytes.NewReader(pBytes))

			var vk groth16.VerifyingKey
			_, _ = vk.ReadFrom(bytes.NewReader(vBytes))

			var pub witness.PublicInputs
			_ = json.Unmarshal(jBytes, &pub)

			digest, err := hexutil.Decode(pub.Digest)
			if err != nil {
				return fmt.Errorf("parse digest: %w", err)
			}
			if len(digest) != 32 {
				return fmt.Errorf("digest is %d bytes, want 32", len(digest))
			}

			pubAssign := &circuits.WordCommitCircuit{}
			for i, b := range digest {
				pubAssign.Digest[i] = b
			}
			pubWit, _ := frontend.NewWitness(
				pubAssign,
				circuits.Curve().ScalarField(),
				frontend.PublicOnly(),
			)

			if err := groth16.Verify(proof, vk, pubWit); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			fmt.Println("proof verified ✅")
			return nil
		},
	}

	cmd.Flags().StringVar(&proofPath, "proof", "", "word_proof.bin")
	cmd.Flags().StringVar(&publicPath, "public", "", "word_public.json")
	cmd.Flags().StringVar(&vkPath, "vk", "", "word_vk.bin")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("public")
	_ = cmd.MarkFlagRequired("vk")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
