package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keywrap/keywrap-go/internal/crypto"
)

// NewInspectCommand creates the cobra command for the inspect
// subcommand. It prints the framing of a token without verifying it,
// so no secret is required.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [token]",
		Short: "Print the decoded layout of a token (no verification)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := tokenArg(cmd, args)
			if err != nil {
				return err
			}

			frame, err := crypto.SplitToken(token)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tag:  %s\n", hex.EncodeToString(frame.Tag))
			fmt.Fprintf(out, "salt: %s\n", hex.EncodeToString(frame.Salt))
			fmt.Fprintf(out, "body: %d bytes\n", len(frame.Body))
			return nil
		},
	}
}
