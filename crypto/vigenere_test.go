package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVigenereEncrypt(t *testing.T) {
	t.Run("Should match the classic LEMON example", func(t *testing.T) {
		out, err := VigenereEncrypt("ATTACKATDAWN", "LEMON")
		require.NoError(t, err)
		assert.Equal(t, "LXFOPVEFRNHR", out)
	})

	t.Run("Should not advance the key on non-letters", func(t *testing.T) {
		out, err := VigenereEncrypt("A B", "KEY")
		require.NoError(t, err)
		assert.Equal(t, "K F", out)

		out, err = VigenereEncrypt("attack at dawn", "LEMON")
		require.NoError(t, err)
		assert.Equal(t, "lxfopv ef rnhr", out)
	})

	t.Run("Should treat key letters case-insensitively", func(t *testing.T) {
		upper, err := VigenereEncrypt("Secret Message", "KEY")
		require.NoError(t, err)
		lower, err := VigenereEncrypt("Secret Message", "key")
		require.NoError(t, err)
		assert.Equal(t, upper, lower)
	})

	t.Run("Should use non-letter key bytes as shifts", func(t *testing.T) {
		out, err := VigenereEncrypt("AAAA", "K1")
		require.NoError(t, err)
		// '1' - 'A' = -16, which folds to 10 -> 'K'
		assert.Equal(t, "KKKK", out)
	})
}

func TestVigenereDecrypt(t *testing.T) {
	t.Run("Should invert encryption", func(t *testing.T) {
		cases := []struct {
			text string
			key  string
		}{
			{"ATTACKATDAWN", "LEMON"},
			{"Hello, World! 2025", "key"},
			{"", "ABC"},
			{"zzz ZZZ", "Z"},
			{"The quick brown fox jumps over the lazy dog.", "Kryptos"},
		}
		for _, tc := range cases {
			enc, err := VigenereEncrypt(tc.text, tc.key)
			require.NoError(t, err)
			dec, err := VigenereDecrypt(enc, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.text, dec)
		}
	})
}

func TestValidateVigenereKey(t *testing.T) {
	t.Run("Should reject an empty key", func(t *testing.T) {
		_, err := VigenereEncrypt("text", "")
		assert.ErrorIs(t, err, ErrInvalidKey)

		_, err = VigenereDecrypt("text", "")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("Should reject a key without letters", func(t *testing.T) {
		assert.ErrorIs(t, ValidateVigenereKey("123 !"), ErrInvalidKey)
	})

	t.Run("Should accept and round-trip a long alphabetic key", func(t *testing.T) {
		key := strings.Repeat("LEMON", 60)
		require.NoError(t, ValidateVigenereKey(key))

		enc, err := VigenereEncrypt("ATTACK AT DAWN", key)
		require.NoError(t, err)
		assert.Equal(t, "LXFOPV EF RNHR", enc)

		dec, err := VigenereDecrypt(enc, key)
		require.NoError(t, err)
		assert.Equal(t, "ATTACK AT DAWN", dec)
	})

	t.Run("Should accept a mixed key with at least one letter", func(t *testing.T) {
		assert.NoError(t, ValidateVigenereKey("K3Y"))
	})
}
