package crypto

import (
	"fmt"
	"strings"
)

const squareSize = 5

type cell struct {
	row, col int
	set      bool
}

// KeySquare is the 5x5 Playfair grid. I and J share a cell; J never appears.
type KeySquare struct {
	grid      [squareSize][squareSize]byte
	positions [alphabetSize]cell
}

// BuildKeySquare places the keyword's letters in first-occurrence order and
// fills the rest of the grid with the unused alphabet. Non-letters and
// repeats in the keyword are skipped, so an empty keyword gives A..Z minus J.
func BuildKeySquare(keyword string) KeySquare {
	var ks KeySquare
	var used [alphabetSize]bool
	used['J'-'A'] = true
	pos := 0

	place := func(c byte) {
		row, col := pos/squareSize, pos%squareSize
		ks.grid[row][col] = c
		ks.positions[c-'A'] = cell{row: row, col: col, set: true}
		used[c-'A'] = true
		pos++
	}

	for i := 0; i < len(keyword); i++ {
		c := toUpper(keyword[i])
		if !isUpper(c) {
			continue
		}
		if c == 'J' {
			c = 'I'
		}
		if !used[c-'A'] {
			place(c)
		}
	}

	for c := byte('A'); c <= 'Z'; c++ {
		if !used[c-'A'] {
			place(c)
		}
	}

	return ks
}

// Locate returns the cell holding letter. J is looked up as I.
func (ks KeySquare) Locate(letter byte) (row, col int, err error) {
	c := toUpper(letter)
	if c == 'J' {
		c = 'I'
	}
	if !isUpper(c) || !ks.positions[c-'A'].set {
		return 0, 0, fmt.Errorf("%w: letter %q not found", ErrInvariantViolation, letter)
	}
	p := ks.positions[c-'A']
	return p.row, p.col, nil
}

func (ks KeySquare) At(row, col int) byte {
	return ks.grid[row][col]
}

// Rows returns the grid as five strings of five letters.
func (ks KeySquare) Rows() []string {
	rows := make([]string, squareSize)
	for r := range squareSize {
		rows[r] = string(ks.grid[r][:])
	}
	return rows
}

func (ks KeySquare) String() string {
	lines := make([]string, squareSize)
	for r, row := range ks.Rows() {
		lines[r] = strings.Join(strings.Split(row, ""), " ")
	}
	return strings.Join(lines, "\n")
}
