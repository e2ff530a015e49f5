// Package cmd implements the CLI commands for paste2md using Cobra.
// Configuration is layered with viper: flags, then PASTE2MD_* environment
// variables, then a paste2md.yaml config file, then flag defaults.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "paste2md",
		Short: "paste2md — convert pasted HTML into clean Markdown",
		Long: `paste2md converts rich-text HTML (clipboard contents, saved pages, or a URL)
into clean Markdown, in basic or Pandoc flavor, and can re-render the result
as HTML, JSON, or PDF.

Usage:
  paste2md convert [file|-] [flags]
  paste2md cleanup [file|-]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./paste2md.yaml or ~/.config/paste2md/paste2md.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Print per-stage progress to stderr")

	root.AddCommand(newConvertCmd(v), newCleanupCmd(), newVersionCmd())
	return root
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("paste2md")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "paste2md"))
		}
	}

	v.SetEnvPrefix("PASTE2MD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	verbosef(cmd, "Using config file: %s\n", v.ConfigFileUsed())
	return nil
}

// verbosef prints a progress line to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
