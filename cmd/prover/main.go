package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/evmvars/circuits"
	"github.com/yourorg/evmvars/pkg/witness"
)

func parseWord(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") {
		v, err := hexutil.DecodeUint64(s)
		if err != nil {
			return 0, fmt.Errorf("parse word %q: %w", s, err)
		}
		if v > 0xFFFFFFFF {
			return 0, fmt.Errorf("word %s does not fit in 32 bits", s)
		}
		return uint32(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse word %q: %w", s, err)
	}
	return uint32(v), nil
}

func main() {
	var (
		wordS  string
		outDir string
	)

	rootCmd := &cobra.Command{
		Use:   "prover",
		Short: "Generate Groth16 proof of a committed 32-bit word",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			if outDir == "" {
				_ = godotenv.Load()
				outDir = os.Getenv("EVMVARS_OUTDIR")
				if outDir == "" {
					outDir = "./"
				}
			}

			word, err := parseWord(wordS)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Witness bundle
			// -----------------------------------------------------------------
			bundle, err := witness.Build(word)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Circuit compile
			// -----------------------------------------------------------------
			cs, err := frontend.Compile(
				circuits.Curve().ScalarField(),
				r1cs.NewBuilder,
				&circuits.WordCommitCircuit{},
			)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Trusted setup (cached)
			// -----------------------------------------------------------------
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			pkPath := filepath.Join(outDir, "word_pk.bin")
			vkPath := filepath.Join(outDir, "word_vk.bin")

			var pk groth16.ProvingKey
			var vk groth16.VerifyingKey

			if pkBytes, err := os.ReadFile(pkPath); err == nil {
				_, _ = pk.ReadFrom(bytes.NewReader(pkBytes))
				vkBytes, _ := os.ReadFile(vkPath)
				_, _ = vk.ReadFrom(bytes.NewReader(vkBytes))
			} else {
				pk, vk, err = groth16.Setup(cs)
				if err != nil {
					return err
				}
				var b bytes.Buffer
				_, _ = pk.WriteTo(&b)
				_ = os.WriteFile(pkPath, b.Bytes(), 0o644)
				b.Reset()
				_, _ = vk.WriteTo(&b)
				_ = os.WriteFile(vkPath, b.Bytes(), 0o644)
			}

			// -----------------------------------------------------------------
			// Prove
			// -----------------------------------------------------------------
			proof, err := groth16.Prove(cs, pk, bundle.Full)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Outputs
			// -----------------------------------------------------------------
			proofPath := filepath.Join(outDir, "word_proof.bin")
			publicPath := filepath.Join(outDir, "word_public.json")

			var buf bytes.Buffer
			_, _ = proof.WriteTo(&buf)
			_ = os.WriteFile(proofPath, buf.Bytes(), 0o644)

			jsonBytes, _ := json.MarshalIndent(bundle.Public, "", "  ")
			_ = os.WriteFile(publicPath, jsonBytes, 0o644)

			csBuf := new(bytes.Buffer)
			_, _ = cs.WriteTo(csBuf)
			sum := sha256.Sum256(csBuf.Bytes())
			fmt.Printf("circuit hash: %x\n", sum[:4])
			fmt.Printf("digest: %s\n", bundle.Public.Digest)
			fmt.Printf("proof done in %s\n", time.Since(start))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&wordS, "word", "", "32-bit word to commit to (decimal or 0x-hex)")
	rootCmd.Flags().StringVar(&outDir, "outdir", "", "Output directory (default $EVMVARS_OUTDIR or ./)")
	_ = rootCmd.MarkFlagRequired("word")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
