package proof

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulated_RecordProof(t *testing.T) {
	p := NewSimulated()

	sig, err := p.RecordProof(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, sig, signatureLen)
	for _, r := range sig {
		assert.True(t, strings.ContainsRune(alphabet, r), "signature uses base58 alphabet")
	}

	other, err := p.RecordProof(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, sig, other)
}
