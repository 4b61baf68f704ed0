// Package proof produces on-chain cancellation receipts. The shipped
// implementation fabricates a signature-shaped reference instead of
// broadcasting a real memo transaction.
package proof

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"ghost_protocol/internal/entity"
)

// Base58 alphabet used by Solana transaction signatures.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const signatureLen = 88

// Simulated emits a random base58 string of the length a real transaction
// signature would have.
type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

func (p *Simulated) RecordProof(_ context.Context, _ *entity.Subscription) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	sig := make([]byte, signatureLen)
	for i := range sig {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate proof reference: %w", err)
		}
		sig[i] = alphabet[n.Int64()]
	}
	return string(sig), nil
}
