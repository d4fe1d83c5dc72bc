// Package commands builds the keywrap command-line interface.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// secretEnvVar is the environment variable consulted when no --secret
// flag is given.
const secretEnvVar = "KEYWRAP_SECRET"

// NewRootCommand creates the root command with common configuration.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "keywrap [flags] command [flags]",
		Short: "Wrap and unwrap URL-safe authenticated tokens",
		Long: `Wraps arbitrary bytes into a compact, URL-safe authenticated token and
unwraps such tokens with integrity verification. Tokens are deterministic:
the same secret and input always produce the same token.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("secret", "k", "", "Secret key (defaults to $"+secretEnvVar+")")
	root.PersistentFlags().String("env-file", "", "Load environment variables from a .env file first")

	root.AddCommand(NewWrapCommand(), NewUnwrapCommand(), NewInspectCommand())

	return root
}

// resolveSecret returns the secret from the --secret flag or, failing
// that, from the environment. An --env-file flag is loaded before the
// environment is consulted.
func resolveSecret(cmd *cobra.Command) ([]byte, error) {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		secret = os.Getenv(secretEnvVar)
	}
	if secret == "" {
		return nil, fmt.Errorf("no secret: pass --secret or set $%s", secretEnvVar)
	}

	return []byte(secret), nil
}
