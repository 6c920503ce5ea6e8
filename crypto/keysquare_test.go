package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWellFormedSquare(t *testing.T, ks KeySquare) {
	t.Helper()
	seen := make(map[byte]int)
	for r := range squareSize {
		for c := range squareSize {
			seen[ks.At(r, c)]++
		}
	}
	require.Len(t, seen, 25)
	for letter := byte('A'); letter <= 'Z'; letter++ {
		if letter == 'J' {
			assert.Zero(t, seen[letter], "J must not appear")
			continue
		}
		assert.Equal(t, 1, seen[letter], "letter %c", letter)
	}
}

func TestBuildKeySquare(t *testing.T) {
	t.Run("Should place keyword letters first then the remaining alphabet", func(t *testing.T) {
		ks := BuildKeySquare("playfair example")
		assert.Equal(t, []string{"PLAYF", "IREXM", "BCDGH", "KNOQS", "TUVWZ"}, ks.Rows())
	})

	t.Run("Should build the KEYWORD square", func(t *testing.T) {
		ks := BuildKeySquare("KEYWORD")
		assert.Equal(t, []string{"KEYWO", "RDABC", "FGHIL", "MNPQS", "TUVXZ"}, ks.Rows())
	})

	t.Run("Should map J to I and ignore non-letters", func(t *testing.T) {
		ks := BuildKeySquare("j-a 9 z")
		assert.Equal(t, "IAZBC", ks.Rows()[0])
	})

	t.Run("Should fall back to the alphabet for an empty keyword", func(t *testing.T) {
		ks := BuildKeySquare("")
		assert.Equal(t, []string{"ABCDE", "FGHIK", "LMNOP", "QRSTU", "VWXYZ"}, ks.Rows())
	})

	t.Run("Should always contain 25 distinct letters without J", func(t *testing.T) {
		for _, keyword := range []string{"", "KEYWORD", "jjjjj", "The Quick Brown Fox Jumps", "1234!@#$", "ZYXWVUTSRQPONMLKJIHGFEDCBA"} {
			assertWellFormedSquare(t, BuildKeySquare(keyword))
		}
	})

	t.Run("Should render five rows of spaced letters", func(t *testing.T) {
		ks := BuildKeySquare("")
		assert.Equal(t, "A B C D E\nF G H I K\nL M N O P\nQ R S T U\nV W X Y Z", ks.String())
	})
}

func TestKeySquareLocate(t *testing.T) {
	ks := BuildKeySquare("KEYWORD")

	t.Run("Should find every letter at the cell holding it", func(t *testing.T) {
		for r := range squareSize {
			for c := range squareSize {
				row, col, err := ks.Locate(ks.At(r, c))
				require.NoError(t, err)
				assert.Equal(t, r, row)
				assert.Equal(t, c, col)
			}
		}
	})

	t.Run("Should locate J in the I cell and accept lower case", func(t *testing.T) {
		ri, ci, err := ks.Locate('I')
		require.NoError(t, err)
		rj, cj, err := ks.Locate('j')
		require.NoError(t, err)
		assert.Equal(t, ri, rj)
		assert.Equal(t, ci, cj)
	})

	t.Run("Should report an invariant violation for a non-letter", func(t *testing.T) {
		_, _, err := ks.Locate('#')
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("Should report an invariant violation on an unbuilt square", func(t *testing.T) {
		var empty KeySquare
		_, _, err := empty.Locate('A')
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})
}
