// Package main provides the binowl command, which encodes ontology documents
// into the binowl binary form, inspects encoded files and manages a snapshot
// archive.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/binowl/internal/config"
	"github.com/spf13/cobra"
)

const appName = "binowl"

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands once the configuration has
// been loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		a          app
	)

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Encode and inspect binary OWL documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.cfg, a.logger = cfg, logger
			logger.Debug("loaded configuration", slog.String("path", configPath))

			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")

	cmd.AddCommand(
		encodeCmd(&a),
		decodeCmd(&a),
		inspectCmd(&a),
		statsCmd(&a),
		archiveCmd(&a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
