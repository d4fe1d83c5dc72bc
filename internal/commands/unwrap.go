package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	keywrap "github.com/keywrap/keywrap-go"
)

// NewUnwrapCommand creates the cobra command for the unwrap subcommand.
// The token comes from the argument, or from stdin when absent, and the
// recovered plaintext is written to stdout as raw bytes.
func NewUnwrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unwrap [token]",
		Aliases: []string{"u"},
		Short:   "Verify a token and write its plaintext to stdout",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := resolveSecret(cmd)
			if err != nil {
				return err
			}

			token, err := tokenArg(cmd, args)
			if err != nil {
				return err
			}

			data, err := keywrap.Unwrap(secret, token)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// tokenArg returns the token from args or from stdin.
func tokenArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}
