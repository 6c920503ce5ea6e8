package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	AlgorithmCaesar   = "caesar"
	AlgorithmVigenere = "vigenere"
	AlgorithmPlayfair = "playfair"
)

// Cipher is implemented by every algorithm in this package.
type Cipher interface {
	Name() string
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type Caesar struct {
	Shift int
}

func (c Caesar) Name() string {
	return AlgorithmCaesar
}

func (c Caesar) Encrypt(plaintext string) (string, error) {
	return CaesarEncrypt(plaintext, c.Shift), nil
}

func (c Caesar) Decrypt(ciphertext string) (string, error) {
	return CaesarDecrypt(ciphertext, c.Shift), nil
}

func Algorithms() []string {
	return []string{AlgorithmCaesar, AlgorithmVigenere, AlgorithmPlayfair}
}

func IsAlgorithm(name string) bool {
	for _, a := range Algorithms() {
		if a == name {
			return true
		}
	}
	return false
}

// New builds the named cipher. For caesar the key is a decimal shift.
func New(algorithm, key string) (Cipher, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case AlgorithmCaesar:
		shift, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: caesar shift must be an integer, got %q", ErrInvalidKey, key)
		}
		return Caesar{Shift: shift}, nil
	case AlgorithmVigenere:
		return NewVigenere(key)
	case AlgorithmPlayfair:
		return NewPlayfair(key), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
