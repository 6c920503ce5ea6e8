package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaesarEncrypt(t *testing.T) {
	t.Run("Should shift letters and keep punctuation in place", func(t *testing.T) {
		assert.Equal(t, "Khoor, Zruog!", CaesarEncrypt("Hello, World!", 3))
	})

	t.Run("Should wrap around the end of the alphabet", func(t *testing.T) {
		assert.Equal(t, "abc XYZ", CaesarEncrypt("xyz UVW", 3))
	})

	t.Run("Should treat shifts outside 0..25 modulo 26", func(t *testing.T) {
		assert.Equal(t, CaesarEncrypt("Attack", 3), CaesarEncrypt("Attack", 29))
		assert.Equal(t, "z", CaesarEncrypt("a", -1))
		assert.Equal(t, CaesarEncrypt("Attack", 23), CaesarEncrypt("Attack", -3))
	})

	t.Run("Should preserve the case pattern of every letter", func(t *testing.T) {
		out := CaesarEncrypt("MiXeD CaSe", 7)
		in := "MiXeD CaSe"
		for i := 0; i < len(in); i++ {
			assert.Equal(t, isUpper(in[i]), isUpper(out[i]), "position %d", i)
			assert.Equal(t, isLower(in[i]), isLower(out[i]), "position %d", i)
		}
	})

	t.Run("Should accept empty input", func(t *testing.T) {
		assert.Equal(t, "", CaesarEncrypt("", 5))
	})
}

func TestCaesarDecrypt(t *testing.T) {
	t.Run("Should invert encryption for every shift", func(t *testing.T) {
		text := "The quick brown fox, 42 times!"
		for shift := range alphabetSize {
			assert.Equal(t, text, CaesarDecrypt(CaesarEncrypt(text, shift), shift), "shift %d", shift)
		}
	})

	t.Run("Should invert encryption for negative and large shifts", func(t *testing.T) {
		text := "Veni, vidi, vici."
		for _, shift := range []int{-27, -1, 26, 52, 1000} {
			assert.Equal(t, text, CaesarDecrypt(CaesarEncrypt(text, shift), shift), "shift %d", shift)
		}
	})
}
