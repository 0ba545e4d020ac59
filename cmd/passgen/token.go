package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newTokenCmd(a *app) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the history API",
		Long: `Signs a token with the configured JWT secret. Send it as
"Authorization: Bearer <token>" to GET /api/v1/history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := crypto.GenerateToken(subject, a.cfg.JWT.Secret, a.cfg.JWT.Expiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cli", "token subject")
	return cmd
}
