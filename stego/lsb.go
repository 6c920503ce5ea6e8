// Package stego hides classical ciphertext in the LSBs of PCM samples
package stego

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"classic-cipher-backend/crypto"
	"classic-cipher-backend/models"
)

const (
	lengthHeaderBytes = 4
	bitsInByte        = 8
)

var (
	ErrCapacityExceeded = errors.New("message exceeds carrier capacity")
	ErrNoMessage        = errors.New("no hidden message found")
)

type LSBSteganography struct {
	config *models.StegoConfig
}

func NewLSBSteganography(config *models.StegoConfig) *LSBSteganography {
	return &LSBSteganography{
		config: config,
	}
}

// generateSeed derives a deterministic shuffle seed from the key
func generateSeed(key string) int64 {
	hash := md5.Sum([]byte(key))
	return int64(binary.BigEndian.Uint64(hash[:8]))
}

// Capacity is the number of ciphertext bytes that fit in samples.
func (lsb *LSBSteganography) Capacity(samples []int) int {
	capacity := len(samples)/bitsInByte - lengthHeaderBytes
	if capacity < 0 {
		return 0
	}
	return capacity
}

// Embed encrypts message with the configured cipher and writes the
// ciphertext, prefixed by its length, one bit per sample.
func (lsb *LSBSteganography) Embed(samples []int, message string) ([]int, string, error) {
	cipher, err := crypto.New(lsb.config.Algorithm, lsb.config.Key)
	if err != nil {
		return nil, "", err
	}
	ciphertext, err := cipher.Encrypt(message)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encrypt message: %w", err)
	}

	capacity := lsb.Capacity(samples)
	if len(ciphertext) > capacity {
		return nil, "", fmt.Errorf("%w: %d bytes, capacity: %d bytes", ErrCapacityExceeded, len(ciphertext), capacity)
	}

	payload := make([]byte, lengthHeaderBytes, lengthHeaderBytes+len(ciphertext))
	binary.BigEndian.PutUint32(payload, uint32(len(ciphertext)))
	payload = append(payload, ciphertext...)
	payloadBits := bytesToBits(payload)

	stegoSamples := make([]int, len(samples))
	copy(stegoSamples, samples)

	positions := lsb.generatePositions(len(samples))
	for i, bit := range payloadBits {
		pos := positions[i]
		stegoSamples[pos] = (stegoSamples[pos] &^ 1) | int(bit)
	}

	return stegoSamples, ciphertext, nil
}

// Extract reads the hidden ciphertext back and decrypts it.
func (lsb *LSBSteganography) Extract(samples []int) (string, string, error) {
	cipher, err := crypto.New(lsb.config.Algorithm, lsb.config.Key)
	if err != nil {
		return "", "", err
	}

	headerBits := lengthHeaderBytes * bitsInByte
	if len(samples) < headerBits {
		return "", "", fmt.Errorf("%w: carrier too short for length header", ErrNoMessage)
	}

	positions := lsb.generatePositions(len(samples))
	readBytes := func(from, count int) []byte {
		bits := make([]byte, count*bitsInByte)
		for i := range bits {
			bits[i] = byte(samples[positions[from+i]] & 1)
		}
		return bitsToBytes(bits)
	}

	dataLen := int(binary.BigEndian.Uint32(readBytes(0, lengthHeaderBytes)))
	if dataLen > lsb.Capacity(samples) {
		return "", "", fmt.Errorf("%w: invalid message length %d, check key and parameters", ErrNoMessage, dataLen)
	}

	ciphertext := string(readBytes(headerBits, dataLen))
	plaintext, err := cipher.Decrypt(ciphertext)
	if err != nil {
		return ciphertext, "", fmt.Errorf("failed to decrypt message: %w", err)
	}

	return ciphertext, plaintext, nil
}

// generatePositions returns the order in which samples carry payload bits
func (lsb *LSBSteganography) generatePositions(sampleCount int) []int {
	if lsb.config.UseRandomStart {
		rng := rand.New(rand.NewSource(generateSeed(lsb.config.Key)))
		return rng.Perm(sampleCount)
	}

	positions := make([]int, sampleCount)
	for i := range positions {
		positions[i] = i
	}
	return positions
}

func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*bitsInByte)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

func bitsToBytes(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/bitsInByte)
	for i := 0; i+bitsInByte <= len(bits); i += bitsInByte {
		var b byte
		for j := range bitsInByte {
			b = (b << 1) | (bits[i+j] & 1)
		}
		out = append(out, b)
	}
	return out
}
