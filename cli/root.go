// Package cli wires the cobra commands of the classic-cipher tool
package cli

import (
	"fmt"

	"classic-cipher-backend/config"
	"classic-cipher-backend/logger"

	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
}

// setup loads configuration and installs the logger; flags win over env.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		if cfg.Log.Level, err = cmd.Flags().GetString("log-level"); err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	if cmd.Flags().Changed("log-json") {
		if cfg.Log.JSON, err = cmd.Flags().GetBool("log-json"); err != nil {
			return fmt.Errorf("failed to get log-json flag: %w", err)
		}
	}

	logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON)
	a.cfg = cfg
	return nil
}

func RootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "classic-cipher",
		Short:             "Caesar, Vigenère and Playfair ciphers for teaching historical cryptography",
		Long:              "Run without a subcommand for the interactive menu.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		a.encryptCmd(),
		a.decryptCmd(),
		a.squareCmd(),
		a.benchmarkCmd(),
		a.serveCmd(),
	)

	return root
}

func Execute() error {
	return RootCmd().Execute()
}
