package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
)

func newStrengthCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Score a password against the strength checks",
		Long: `Scores a password from 0 to 5: one point each for a length of at least 12
and for containing uppercase letters, lowercase letters, digits and symbols.
Without an argument the password is read from stdin, hidden on a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				p, err := a.prompter(cmd).ReadSecret("Enter password to check: ")
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				password = p
			}

			resp := a.svc.CheckStrength(model.StrengthRequest{Password: password})
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			fmt.Fprintf(out, "Password Strength: %d/%d\n", resp.Score, resp.MaxScore)
			fmt.Fprintf(out, "Reasons: %s\n", strings.Join(resp.Reasons, ", "))
			if resp.Estimate.CrackTime != "" {
				fmt.Fprintf(out, "Estimated crack time: %s\n", resp.Estimate.CrackTime)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
