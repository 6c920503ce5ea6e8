// Package benchmark times the classical ciphers against each other
package benchmark

import (
	"fmt"
	"strconv"
	"time"

	"classic-cipher-backend/crypto"
	"classic-cipher-backend/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	DefaultIterations = 10000
	DefaultText       = "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"
)

// DefaultKeys are the keys each algorithm is benchmarked with.
var DefaultKeys = map[string]string{
	crypto.AlgorithmCaesar:   "3",
	crypto.AlgorithmVigenere: "KEY",
	crypto.AlgorithmPlayfair: "KEYWORD",
}

type Config struct {
	Iterations int
	Text       string
}

// Run encrypts Text Iterations times with every algorithm. Relative times
// are against the first algorithm, caesar.
func Run(cfg Config) ([]models.BenchmarkRow, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}

	rows := make([]models.BenchmarkRow, 0, len(crypto.Algorithms()))

	for _, algorithm := range crypto.Algorithms() {
		cipher, err := crypto.New(algorithm, DefaultKeys[algorithm])
		if err != nil {
			return nil, err
		}

		start := time.Now()
		for range cfg.Iterations {
			if _, err := cipher.Encrypt(cfg.Text); err != nil {
				return nil, fmt.Errorf("%s benchmark failed: %w", algorithm, err)
			}
		}
		seconds := time.Since(start).Seconds()

		row := models.BenchmarkRow{Algorithm: algorithm, Seconds: seconds}
		if seconds > 0 {
			row.OpsPerSec = float64(cfg.Iterations) / seconds
		}
		rows = append(rows, row)
	}

	setRelative(rows)
	return rows, nil
}

// setRelative divides every time by the first row's. A zero baseline
// leaves Relative unset rather than promoting a later row.
func setRelative(rows []models.BenchmarkRow) {
	if len(rows) == 0 || rows[0].Seconds <= 0 {
		return
	}
	baseline := rows[0].Seconds
	for i := range rows {
		rows[i].Relative = rows[i].Seconds / baseline
	}
}

// Render draws rows as a bordered table for the terminal.
func Render(rows []models.BenchmarkRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Cipher", "Time (s)", "Ops/sec", "Relative")

	for _, r := range rows {
		t.Row(
			r.Algorithm,
			strconv.FormatFloat(r.Seconds, 'f', 4, 64),
			strconv.FormatFloat(r.OpsPerSec, 'f', 0, 64),
			strconv.FormatFloat(r.Relative, 'f', 2, 64)+"x",
		)
	}

	return t.String()
}
