package crypto

import (
	"fmt"
)

// Filler separates repeated letters and pads odd-length Playfair input.
const Filler = 'X'

type Digraph [2]byte

func (d Digraph) String() string {
	return string(d[:])
}

type Playfair struct {
	square KeySquare
}

func NewPlayfair(key string) *Playfair {
	return &Playfair{square: BuildKeySquare(key)}
}

func (p *Playfair) Name() string {
	return AlgorithmPlayfair
}

func (p *Playfair) Square() KeySquare {
	return p.square
}

func (p *Playfair) Encrypt(plaintext string) (string, error) {
	return p.square.transform(PreparePlayfairDigraphs(plaintext), 1)
}

// Decrypt reverses the substitution rules. Fillers inserted during
// encryption, and anything Sanitize dropped, are not restored.
func (p *Playfair) Decrypt(ciphertext string) (string, error) {
	clean := Sanitize(ciphertext)
	if len(clean)%2 != 0 {
		return "", fmt.Errorf("%w: playfair ciphertext has odd length %d", ErrInvalidCiphertext, len(clean))
	}

	pairs := make([]Digraph, 0, len(clean)/2)
	for i := 0; i < len(clean); i += 2 {
		pairs = append(pairs, Digraph{clean[i], clean[i+1]})
	}
	return p.square.transform(pairs, squareSize-1)
}

// PreparePlayfairDigraphs sanitizes text, inserts Filler after any letter
// that equals the next one and pads the result to even length.
func PreparePlayfairDigraphs(text string) []Digraph {
	clean := Sanitize(text)
	prepared := make([]byte, 0, len(clean)*2+1)

	for i := 0; i < len(clean); i++ {
		prepared = append(prepared, clean[i])
		if i < len(clean)-1 && clean[i] == clean[i+1] {
			prepared = append(prepared, Filler)
		}
	}
	if len(prepared)%2 == 1 {
		prepared = append(prepared, Filler)
	}

	pairs := make([]Digraph, 0, len(prepared)/2)
	for i := 0; i < len(prepared); i += 2 {
		pairs = append(pairs, Digraph{prepared[i], prepared[i+1]})
	}
	return pairs
}

// transform applies the row, column and rectangle rules to every pair.
// step is 1 to encrypt and 4 (one to the left/up) to decrypt.
func (ks KeySquare) transform(pairs []Digraph, step int) (string, error) {
	out := make([]byte, 0, len(pairs)*2)

	for _, d := range pairs {
		r1, c1, err := ks.Locate(d[0])
		if err != nil {
			return "", err
		}
		r2, c2, err := ks.Locate(d[1])
		if err != nil {
			return "", err
		}

		switch {
		case r1 == r2:
			out = append(out, ks.grid[r1][(c1+step)%squareSize], ks.grid[r2][(c2+step)%squareSize])
		case c1 == c2:
			out = append(out, ks.grid[(r1+step)%squareSize][c1], ks.grid[(r2+step)%squareSize][c2])
		default:
			out = append(out, ks.grid[r1][c2], ks.grid[r2][c1])
		}
	}

	return string(out), nil
}

func PlayfairEncrypt(plaintext, key string) (string, error) {
	return NewPlayfair(key).Encrypt(plaintext)
}

func PlayfairDecrypt(ciphertext, key string) (string, error) {
	return NewPlayfair(key).Decrypt(ciphertext)
}
