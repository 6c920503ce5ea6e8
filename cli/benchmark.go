package cli

import (
	"fmt"

	"classic-cipher-backend/benchmark"

	"github.com/spf13/cobra"
)

func (a *app) benchmarkCmd() *cobra.Command {
	var (
		iterations int
		text       string
	)
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time every cipher on the same text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("iterations") {
				iterations = a.cfg.Benchmark.Iterations
			}
			if !cmd.Flags().Changed("text") {
				text = a.cfg.Benchmark.Text
			}
			return printBenchmark(cmd, iterations, text)
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", benchmark.DefaultIterations, "runs per cipher")
	cmd.Flags().StringVar(&text, "text", benchmark.DefaultText, "text to encrypt")
	return cmd
}

func printBenchmark(cmd *cobra.Command, iterations int, text string) error {
	rows, err := benchmark.Run(benchmark.Config{Iterations: iterations, Text: text})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Test text: %s\nIterations: %d\n\n", text, iterations)
	fmt.Fprintln(out, benchmark.Render(rows))
	return nil
}
