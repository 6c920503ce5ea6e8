package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"classic-cipher-backend/crypto"
	"classic-cipher-backend/logger"

	"github.com/spf13/cobra"
)

const (
	operationEncrypt = "encrypt"
	operationDecrypt = "decrypt"
)

type cipherFlags struct {
	algorithm string
	key       string
	text      string
	file      string
	timing    bool
}

func (a *app) encryptCmd() *cobra.Command {
	return a.cipherCmd(operationEncrypt, "Encrypt text with a classical cipher")
}

func (a *app) decryptCmd() *cobra.Command {
	return a.cipherCmd(operationDecrypt, "Decrypt text with a classical cipher")
}

func (a *app) cipherCmd(operation, short string) *cobra.Command {
	var flags cipherFlags
	cmd := &cobra.Command{
		Use:   operation,
		Short: short,
		Long: fmt.Sprintf(`%s.

INPUT METHODS:
  classic-cipher %[2]s -a caesar -k 3 --text "Hello World"
  classic-cipher %[2]s -a vigenere -k LEMON --file message.txt
  echo "HELLO" | classic-cipher %[2]s -a playfair -k KEYWORD

Caesar keys are integer shifts. Playfair drops everything but letters.`, short, operation),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd, flags.text, flags.file)
			if err != nil {
				return err
			}
			result, elapsed, err := runCipher(flags.algorithm, operation, text, flags.key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			if flags.timing {
				fmt.Fprintf(cmd.ErrOrStderr(), "Time: %.6f seconds\n", elapsed.Seconds())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.algorithm, "algorithm", "a", "", "cipher: "+strings.Join(crypto.Algorithms(), ", "))
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "shift for caesar, keyword otherwise")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "text to process")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read text from file")
	cmd.Flags().BoolVar(&flags.timing, "time", false, "print elapsed time to stderr")
	_ = cmd.MarkFlagRequired("algorithm")

	return cmd
}

// readInput prefers --text, then --file, then stdin.
func readInput(cmd *cobra.Command, text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runCipher(algorithm, operation, text, key string) (string, time.Duration, error) {
	cipher, err := crypto.New(algorithm, key)
	if err != nil {
		return "", 0, err
	}

	start := time.Now()
	var result string
	if operation == operationEncrypt {
		result, err = cipher.Encrypt(text)
	} else {
		result, err = cipher.Decrypt(text)
	}
	elapsed := time.Since(start)
	if err != nil {
		return "", elapsed, fmt.Errorf("%s failed: %w", operation, err)
	}

	logger.Debug("cipher applied", "algorithm", cipher.Name(), "operation", operation, "elapsed", elapsed)
	return result, elapsed, nil
}

func (a *app) squareCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "square",
		Short: "Print the Playfair key square for a keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), crypto.NewPlayfair(key).Square().String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "Playfair keyword")
	return cmd
}
