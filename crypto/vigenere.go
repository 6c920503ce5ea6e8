// Package crypto contains classical Caesar, Vigenère and Playfair ciphers
package crypto

import (
	"fmt"
)

type Vigenere struct {
	key []byte
}

func NewVigenere(key string) (*Vigenere, error) {
	if err := ValidateVigenereKey(key); err != nil {
		return nil, err
	}
	return &Vigenere{
		key: []byte(key),
	}, nil
}

func (v *Vigenere) Name() string {
	return AlgorithmVigenere
}

func (v *Vigenere) Encrypt(plaintext string) (string, error) {
	return v.apply(plaintext, 1), nil
}

func (v *Vigenere) Decrypt(ciphertext string) (string, error) {
	return v.apply(ciphertext, -1), nil
}

// apply walks text with a key cursor that only advances on letters.
// direction is 1 to encrypt and -1 to decrypt.
func (v *Vigenere) apply(text string, direction int) string {
	out := make([]byte, len(text))
	keyLen := len(v.key)
	cursor := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isLetter(c) {
			out[i] = c
			continue
		}
		shift := keyShift(v.key[cursor%keyLen])
		out[i] = shiftLetter(c, normalizeShift(direction*shift))
		cursor++
	}

	return string(out)
}

// keyShift maps a key byte to its letter value, case-insensitive.
// Non-letters still yield a shift in [0,26).
func keyShift(k byte) int {
	return normalizeShift(int(toUpper(k)) - 'A')
}

func VigenereEncrypt(plaintext, key string) (string, error) {
	v, err := NewVigenere(key)
	if err != nil {
		return "", err
	}
	return v.Encrypt(plaintext)
}

func VigenereDecrypt(ciphertext, key string) (string, error) {
	v, err := NewVigenere(key)
	if err != nil {
		return "", err
	}
	return v.Decrypt(ciphertext)
}

// ValidateVigenereKey validates if the key is suitable for Vigenère
func ValidateVigenereKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	if Sanitize(key) == "" {
		return fmt.Errorf("%w: key must contain at least one letter", ErrInvalidKey)
	}
	return nil
}
