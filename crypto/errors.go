package crypto

import "errors"

var (
	ErrInvalidKey         = errors.New("invalid key")
	ErrInvalidCiphertext  = errors.New("invalid ciphertext")
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
	ErrInvariantViolation = errors.New("key square invariant violated")
)
