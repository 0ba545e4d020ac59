// Command passgen generates passwords and scores their strength, either from
// an interactive menu, as one-shot subcommands, or over HTTP.
package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/history"
	"github.com/vaultpass/passgen-go/internal/logger"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/shell"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand shares once configuration is loaded.
type app struct {
	cfgFile string
	cfg     config.Config
	history *history.History
	svc     *service.GeneratorService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords and check their strength",
		Long: `passgen builds random passwords from lowercase, uppercase, digit and
symbol characters, guaranteeing at least one character of every selected
type, and scores passwords against five simple strength checks.

Running without a subcommand starts the interactive menu. Passwords
generated during a session are kept in memory only.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./passgen.yaml)")
	cmd.PersistentFlags().String("log-level", "info", `log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().String("log-format", "text", `log format ("text", "json")`)

	cmd.AddCommand(
		newGenerateCmd(a),
		newStrengthCmd(a),
		newServeCmd(a),
		newTokenCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(logger.New(logger.FromConfig(cfg.Log.Level, cfg.Log.Format, cfg.Env)))

	a.history = history.New()
	a.svc = service.NewGeneratorService(a.history, service.Limits{
		DefaultLength: cfg.Generator.DefaultLength,
		MaxLength:     cfg.Generator.MaxLength,
	})
	return nil
}

func (a *app) prompter(cmd *cobra.Command) shell.Prompter {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if f, ok := in.(*os.File); ok {
		return shell.NewTerminalPrompter(f, out)
	}
	return shell.NewLinePrompter(in, out)
}

func (a *app) runShell(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sh := shell.New(
		a.svc,
		a.prompter(cmd),
		cmd.OutOrStdout(),
		clipboard.New(a.cfg.Clipboard.Enabled),
		shell.Options{MinLength: a.cfg.Shell.MinLength, MaxLength: a.cfg.Shell.MaxLength},
	)
	return sh.Run(ctx)
}

// copyBestEffort copies text and reports a failure on w without failing the command.
func copyBestEffort(w io.Writer, clip clipboard.Writer, text string) {
	if err := clip.WriteAll(text); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		io.WriteString(w, "(Could not copy to clipboard)\n")
		return
	}
	io.WriteString(w, "(Password copied to clipboard!)\n")
}
