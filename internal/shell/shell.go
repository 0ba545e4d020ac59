// Package shell runs the interactive password generator menu.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const (
	choiceDefault  = "1"
	choiceCustom   = "2"
	choiceStrength = "3"
	choiceHistory  = "4"
	choiceExit     = "5"
)

// Options bounds the length accepted by the custom password prompt.
type Options struct {
	MinLength int
	MaxLength int
}

// Shell is one interactive session. Errors from generation are shown to the
// user and never end the session.
type Shell struct {
	svc    *service.GeneratorService
	in     Prompter
	out    io.Writer
	clip   clipboard.Writer
	opts   Options
	styles styles
}

// New creates a Shell over the given collaborators.
func New(svc *service.GeneratorService, in Prompter, out io.Writer, clip clipboard.Writer, opts Options) *Shell {
	if clip == nil {
		clip = clipboard.Disabled{}
	}
	return &Shell{
		svc:    svc,
		in:     in,
		out:    out,
		clip:   clip,
		opts:   opts,
		styles: newStyles(out),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.in.ReadLine("\nChoose an option: ")
		if err != nil {
			return s.endOfInput(err)
		}

		quit, err := s.dispatch(strings.TrimSpace(choice))
		if err != nil {
			return s.endOfInput(err)
		}
		if quit {
			return nil
		}
	}
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Goodbye!")
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.title.Render("Password Generator Menu:"))
	fmt.Fprintln(s.out, "1. Generate password with default settings")
	fmt.Fprintln(s.out, "2. Generate custom password")
	fmt.Fprintln(s.out, "3. Check password strength")
	fmt.Fprintln(s.out, "4. View password history")
	fmt.Fprintln(s.out, "5. Exit")
}

func (s *Shell) dispatch(choice string) (bool, error) {
	switch choice {
	case choiceDefault:
		s.generate(model.GenerateRequest{})
	case choiceCustom:
		return false, s.custom()
	case choiceStrength:
		return false, s.strength()
	case choiceHistory:
		s.history()
	case choiceExit:
		fmt.Fprintln(s.out, "Goodbye!")
		return true, nil
	default:
		s.fail("Invalid choice! Please choose 1-5")
	}
	return false, nil
}

func (s *Shell) custom() error {
	answer, err := s.in.ReadLine(fmt.Sprintf("Password length (%d-%d): ", s.opts.MinLength, s.opts.MaxLength))
	if err != nil {
		return err
	}
	length, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		s.fail(fmt.Sprintf("Invalid input: %q is not a number", strings.TrimSpace(answer)))
		return nil
	}
	if length < s.opts.MinLength || length > s.opts.MaxLength {
		s.fail(fmt.Sprintf("Length must be between %d and %d!", s.opts.MinLength, s.opts.MaxLength))
		return nil
	}

	var flags [4]bool
	for i, class := range []string{"uppercase", "lowercase", "numbers", "symbols"} {
		ok, err := s.confirm(fmt.Sprintf("Include %s? (y/n): ", class))
		if err != nil {
			return err
		}
		flags[i] = ok
	}
	if !flags[0] && !flags[1] && !flags[2] && !flags[3] {
		s.fail("Must select at least one character type!")
		return nil
	}

	s.generate(model.GenerateRequest{
		Length:    &length,
		Uppercase: &flags[0],
		Lowercase: &flags[1],
		Numbers:   &flags[2],
		Symbols:   &flags[3],
	})
	return nil
}

func (s *Shell) confirm(prompt string) (bool, error) {
	answer, err := s.in.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Shell) generate(req model.GenerateRequest) {
	resp, err := s.svc.Generate(req)
	if err != nil {
		if !service.IsValidationError(err) {
			slog.Error("password generation failed", "error", err)
		}
		s.fail(fmt.Sprintf("Error generating password: %v", err))
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Generated Password: %s\n", s.styles.password.Render(resp.Password))

	if err := s.clip.WriteAll(resp.Password); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		fmt.Fprintln(s.out, s.styles.subtle.Render(fmt.Sprintf("(Could not copy to clipboard: %v)", err)))
		return
	}
	fmt.Fprintln(s.out, s.styles.success.Render("(Password copied to clipboard!)"))
}

func (s *Shell) strength() error {
	password, err := s.in.ReadSecret("Enter password to check: ")
	if err != nil {
		return err
	}

	resp := s.svc.CheckStrength(model.StrengthRequest{Password: password})
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Password Strength: %d/%d\n", resp.Score, resp.MaxScore)
	fmt.Fprintf(s.out, "Reasons: %s\n", strings.Join(resp.Reasons, ", "))
	if resp.Estimate.CrackTime != "" {
		fmt.Fprintln(s.out, s.styles.subtle.Render(fmt.Sprintf("Estimated crack time: %s", resp.Estimate.CrackTime)))
	}
	return nil
}

func (s *Shell) history() {
	h := s.svc.History()
	if h.Count == 0 {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "No passwords generated yet!")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.title.Render("Password History:"))
	for _, e := range h.Entries {
		fmt.Fprintf(s.out, "%d. %s\n", e.Seq, e.Password)
	}
}

func (s *Shell) fail(msg string) {
	fmt.Fprintln(s.out, s.styles.err.Render(msg))
}
