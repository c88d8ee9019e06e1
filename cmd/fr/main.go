package main

import (
	"fmt"
	"os"

	"github.com/Karmanya03/Ferret/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "0.1.1"
	logger  *zap.Logger
	cfg     *config.Config
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fr",
		Short:   "Ferret - Fast file finder, organizer, and pentesting tool for Linux/Unix systems",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors, on stderr.
				zcfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = zcfg.Build()
			}
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			cfg, err = config.Load()
			if err != nil {
				return err
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(findCmd())
	rootCmd.AddCommand(organizeCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(lsCmd())
	rootCmd.AddCommand(suidCmd())
	rootCmd.AddCommand(sgidCmd())
	rootCmd.AddCommand(writableCmd())
	rootCmd.AddCommand(capsCmd())
	rootCmd.AddCommand(configsCmd())
	rootCmd.AddCommand(recentCmd())
	rootCmd.AddCommand(dnCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
