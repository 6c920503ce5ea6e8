package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digraphStrings(pairs []Digraph) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.String()
	}
	return out
}

func TestPreparePlayfairDigraphs(t *testing.T) {
	t.Run("Should insert a filler between repeated letters", func(t *testing.T) {
		pairs := PreparePlayfairDigraphs("BALLOON")
		assert.Equal(t, []string{"BA", "LX", "LO", "XO", "NX"}, digraphStrings(pairs))
	})

	t.Run("Should pad odd-length text", func(t *testing.T) {
		pairs := PreparePlayfairDigraphs("HELLO")
		assert.Equal(t, []string{"HE", "LX", "LO"}, digraphStrings(pairs))

		pairs = PreparePlayfairDigraphs("CAT")
		assert.Equal(t, []string{"CA", "TX"}, digraphStrings(pairs))
	})

	t.Run("Should pad a single letter and keep empty input empty", func(t *testing.T) {
		assert.Equal(t, []string{"QX"}, digraphStrings(PreparePlayfairDigraphs("q")))
		assert.Empty(t, PreparePlayfairDigraphs(""))
		assert.Empty(t, PreparePlayfairDigraphs("123 !?"))
	})

	t.Run("Should drop spaces, digits and punctuation", func(t *testing.T) {
		assert.Equal(t, []string{"HI", "DE"}, digraphStrings(PreparePlayfairDigraphs("Hi, de 42!")))
	})
}

func TestPlayfairEncrypt(t *testing.T) {
	t.Run("Should match the published example", func(t *testing.T) {
		out, err := PlayfairEncrypt("Hide the gold in the tree stump", "playfair example")
		require.NoError(t, err)
		assert.Equal(t, "BMODZBXDNABEKUDMUIXMMOUVIF", out)
	})

	t.Run("Should be deterministic and even length", func(t *testing.T) {
		first, err := PlayfairEncrypt("HELLO", "KEYWORD")
		require.NoError(t, err)
		second, err := PlayfairEncrypt("HELLO", "KEYWORD")
		require.NoError(t, err)
		assert.Equal(t, "GYIZSC", first)
		assert.Equal(t, first, second)
		assert.Zero(t, len(first)%2)
	})

	t.Run("Should apply the row, column and rectangle rules", func(t *testing.T) {
		// KEYWO / RDABC / FGHIL / MNPQS / TUVXZ
		row, err := PlayfairEncrypt("KO", "KEYWORD")
		require.NoError(t, err)
		assert.Equal(t, "EK", row)

		col, err := PlayfairEncrypt("KT", "KEYWORD")
		require.NoError(t, err)
		assert.Equal(t, "RK", col)

		rect, err := PlayfairEncrypt("HE", "KEYWORD")
		require.NoError(t, err)
		assert.Equal(t, "GY", rect)
	})

	t.Run("Should encrypt BALLOON differently from naive pairing", func(t *testing.T) {
		// BA LX LO XO NX, not BA LL OO NX
		out, err := PlayfairEncrypt("BALLOON", "KEYWORD")
		require.NoError(t, err)
		assert.Equal(t, "CBIZSCZWQU", out)
	})

	t.Run("Should handle empty and single-letter input", func(t *testing.T) {
		out, err := PlayfairEncrypt("", "KEYWORD")
		require.NoError(t, err)
		assert.Equal(t, "", out)

		out, err = PlayfairEncrypt("a", "KEYWORD")
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("Should encrypt a doubled filler pair", func(t *testing.T) {
		out, err := PlayfairEncrypt("XX", "KEYWORD")
		require.NoError(t, err)
		assert.Len(t, out, 4)
	})
}

func TestPlayfairSquare(t *testing.T) {
	t.Run("Should expose the square built from its keyword", func(t *testing.T) {
		p := NewPlayfair("KEYWORD")
		assert.Equal(t, BuildKeySquare("KEYWORD"), p.Square())
		assert.Equal(t, "KEYWO", p.Square().Rows()[0])
	})
}

func TestPlayfairDecrypt(t *testing.T) {
	t.Run("Should restore the prepared plaintext", func(t *testing.T) {
		dec, err := PlayfairDecrypt("BMODZBXDNABEKUDMUIXMMOUVIF", "playfair example")
		require.NoError(t, err)
		assert.Equal(t, "HIDETHEGOLDINTHETREXESTUMP", dec)
	})

	t.Run("Should only recover normalized content", func(t *testing.T) {
		plaintext := "Hello, World 2025!"
		enc, err := PlayfairEncrypt(plaintext, "KEYWORD")
		require.NoError(t, err)
		dec, err := PlayfairDecrypt(enc, "KEYWORD")
		require.NoError(t, err)

		assert.NotEqual(t, plaintext, dec)
		var prepared string
		for _, d := range PreparePlayfairDigraphs(plaintext) {
			prepared += d.String()
		}
		assert.Equal(t, prepared, dec)
	})

	t.Run("Should reject odd-length ciphertext", func(t *testing.T) {
		_, err := PlayfairDecrypt("ABC", "KEYWORD")
		assert.ErrorIs(t, err, ErrInvalidCiphertext)
	})
}
