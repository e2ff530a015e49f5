package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/paste2md/core/cleanup"
	"github.com/gaurav-prasanna/paste2md/core/normalize"
)

func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup [file|-]",
		Short: "Normalize punctuation and whitespace in plain text or Markdown",
		Long: `Cleanup runs only the text cleanup chain: typographic quotes and dashes are
replaced with ASCII, trailing spaces and stray hard breaks are removed, and
runs of blank lines are collapsed. Use it for clipboard contents that have
no HTML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			in, err := readInput(source, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !utf8.Valid(in.data) {
				return fmt.Errorf("reading %s: %w", source, normalize.ErrInvalidInput)
			}

			text := cleanup.Cleanup(string(in.data))
			if text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
}
