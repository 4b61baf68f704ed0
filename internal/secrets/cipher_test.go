package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cipher_NewCipher(t *testing.T) {
	t.Run("err, key is not hex", func(t *testing.T) {
		_, err := NewCipher("not-hex")
		assert.Error(t, err)
	})

	t.Run("err, key too short", func(t *testing.T) {
		_, err := NewCipher(strings.Repeat("ab", 16))
		assert.ErrorContains(t, err, "32 bytes")
	})

	t.Run("ok", func(t *testing.T) {
		_, err := NewCipher(strings.Repeat("ab", 32))
		assert.NoError(t, err)
	})
}

func Test_cipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(strings.Repeat("ab", 32))
	require.NoError(t, err)

	sealed, err := c.Encrypt("sk-ant-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "sk-ant-secret", sealed)

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-secret", plain)
}

func Test_cipher_NonceIsFresh(t *testing.T) {
	c, err := NewCipher(strings.Repeat("ab", 32))
	require.NoError(t, err)

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func Test_cipher_Decrypt(t *testing.T) {
	c, err := NewCipher(strings.Repeat("ab", 32))
	require.NoError(t, err)

	t.Run("err, not base64", func(t *testing.T) {
		_, err := c.Decrypt("%%%")
		assert.Error(t, err)
	})

	t.Run("err, ciphertext too short", func(t *testing.T) {
		_, err := c.Decrypt("YWJj")
		assert.ErrorContains(t, err, "too short")
	})

	t.Run("err, tampered ciphertext", func(t *testing.T) {
		sealed, err := c.Encrypt("payload")
		require.NoError(t, err)

		raw := []byte(sealed)
		raw[len(raw)-5] ^= 1
		_, err = c.Decrypt(string(raw))
		assert.Error(t, err)
	})

	t.Run("err, wrong key", func(t *testing.T) {
		sealed, err := c.Encrypt("payload")
		require.NoError(t, err)

		other, err := NewCipher(strings.Repeat("cd", 32))
		require.NoError(t, err)
		_, err = other.Decrypt(sealed)
		assert.Error(t, err)
	})
}
