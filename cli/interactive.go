package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"classic-cipher-backend/crypto"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	menuBenchmark = "benchmark"
	menuExit      = "exit"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Border(lipgloss.DoubleBorder()).
	Padding(0, 4)

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bannerStyle.Render("CLASSICAL CIPHER TOOLKIT"))

	for {
		var choice string
		menu := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Main menu").
				Options(
					huh.NewOption("Caesar Cipher", crypto.AlgorithmCaesar),
					huh.NewOption("Vigenère Cipher", crypto.AlgorithmVigenere),
					huh.NewOption("Playfair Cipher", crypto.AlgorithmPlayfair),
					huh.NewOption("Benchmark All Ciphers", menuBenchmark),
					huh.NewOption("Exit", menuExit),
				).
				Value(&choice),
		))
		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case menuExit:
			fmt.Fprintln(out, "Exiting. Stay curious!")
			return nil
		case menuBenchmark:
			if err := printBenchmark(cmd, a.cfg.Benchmark.Iterations, a.cfg.Benchmark.Text); err != nil {
				return err
			}
		default:
			if err := cipherMenu(out, choice); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
		}
	}
}

// cipherMenu asks for operation, text and key, then prints the result.
func cipherMenu(out io.Writer, algorithm string) error {
	operation := operationEncrypt
	var text, key string

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(algorithm).
			Options(
				huh.NewOption("Encrypt", operationEncrypt),
				huh.NewOption("Decrypt", operationDecrypt),
			).
			Value(&operation),
		huh.NewInput().Title("Enter text").Value(&text),
		huh.NewInput().
			Title(keyPrompt(algorithm)).
			Validate(keyValidator(algorithm)).
			Value(&key),
	))
	if err := form.Run(); err != nil {
		return err
	}

	result, elapsed, err := runCipher(algorithm, operation, text, key)
	if err != nil {
		fmt.Fprintf(out, "\nError: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "\nResult: %s\nTime: %.6f seconds\n", result, elapsed.Seconds())
	return nil
}

func keyPrompt(algorithm string) string {
	if algorithm == crypto.AlgorithmCaesar {
		return "Enter shift (0-25)"
	}
	return "Enter key"
}

func keyValidator(algorithm string) func(string) error {
	switch algorithm {
	case crypto.AlgorithmCaesar:
		return func(s string) error {
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("shift must be an integer")
			}
			return nil
		}
	case crypto.AlgorithmVigenere:
		return crypto.ValidateVigenereKey
	default:
		return func(string) error { return nil }
	}
}
