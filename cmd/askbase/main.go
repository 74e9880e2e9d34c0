// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the askbase CLI: an interactive
// question-answering chatbot backed by a flat-file knowledge base.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/askbase/internal/logging"
	"github.com/pdiddy/askbase/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is the configuration resolved in PersistentPreRunE.
var cfg types.Config

// log is the logger built from cfg. A no-op until PersistentPreRunE runs.
var log = zap.NewNop()

// rootCmd is the base command for the askbase CLI.
var rootCmd = &cobra.Command{
	Use:   "askbase",
	Short: "A chatbot that answers who/what/when/where/why/how questions",
	Long: `askbase answers questions of the form "what is X" or "who is Y" from a
knowledge base of [category] entity=answer files. When it does not know an
answer it asks for one and remembers it.

Use chat for an interactive session, or ask, teach and export to work with a
knowledge file from scripts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		envFile, _ := cmd.Flags().GetString("env-file")

		v, err := newViper(cfgFile, envFile)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintln(os.Stderr, "Using config file:", used)
		}

		cfg, err = loadConfig(v)
		if err != nil {
			return err
		}
		if n, _ := cmd.Flags().GetCount("verbose"); n > 0 {
			cfg.Log.Level = logging.VerbosityLevel(n)
		}

		log, err = logging.New(cfg.Log, os.Stderr)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./askbase.yaml or ~/.config/askbase/askbase.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading ASKBASE_* variables")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(1)
	}
}
