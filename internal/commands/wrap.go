package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	keywrap "github.com/keywrap/keywrap-go"
)

// NewWrapCommand creates the cobra command for the wrap subcommand.
// It reads plaintext from stdin and writes the token to stdout.
func NewWrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "wrap",
		Aliases: []string{"w"},
		Short:   "Wrap stdin into a token",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := resolveSecret(cmd)
			if err != nil {
				return err
			}

			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), keywrap.Wrap(secret, data))
			return nil
		},
	}
}
