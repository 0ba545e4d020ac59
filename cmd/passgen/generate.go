package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/model"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		length, count                  int
		noLower, noUpper, noNum, noSym bool
		copyToClipboard, showStrength  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generates passwords and prints one per line. Every selected character
type appears at least once. The last password can be copied to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			lower, upper, num, sym := !noLower, !noUpper, !noNum, !noSym
			req := model.GenerateRequest{
				Lowercase: &lower,
				Uppercase: &upper,
				Numbers:   &num,
				Symbols:   &sym,
			}
			if cmd.Flags().Changed("length") {
				req.Length = &length
			}

			out := cmd.OutOrStdout()
			var last string
			for i := 0; i < count; i++ {
				resp, err := a.svc.Generate(req)
				if err != nil {
					return err
				}
				last = resp.Password
				if showStrength {
					fmt.Fprintf(out, "%s\t%d/%d\n", resp.Password, resp.Strength.Score, resp.Strength.MaxScore)
				} else {
					fmt.Fprintln(out, resp.Password)
				}
			}

			if copyToClipboard {
				copyBestEffort(cmd.ErrOrStderr(), clipboard.New(a.cfg.Clipboard.Enabled), last)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "password length (default generator.default_length)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noNum, "no-numbers", false, "exclude digits")
	cmd.Flags().BoolVar(&noSym, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the last password to the clipboard")
	cmd.Flags().BoolVarP(&showStrength, "strength", "s", false, "print the strength score next to each password")

	return cmd
}
