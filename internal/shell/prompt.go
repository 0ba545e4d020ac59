package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads one answer per prompt.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	// ReadSecret reads an answer without echoing it where the input allows.
	ReadSecret(prompt string) (string, error)
}

// LinePrompter reads newline-terminated answers from any reader.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(in), out: out}
}

// ReadLine writes the prompt and returns the next line without its line ending.
// A final line without a newline is returned as is; io.EOF is only reported
// once nothing is left.
func (p *LinePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret is ReadLine; plain readers cannot hide input.
func (p *LinePrompter) ReadSecret(prompt string) (string, error) {
	return p.ReadLine(prompt)
}

// TerminalPrompter hides secret input when stdin is a terminal.
type TerminalPrompter struct {
	*LinePrompter
	fd int
}

// NewTerminalPrompter creates a Prompter over in, which is usually os.Stdin.
func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{LinePrompter: NewLinePrompter(in, out), fd: int(in.Fd())}
}

// ReadSecret reads without echo on a terminal and falls back to ReadLine otherwise.
func (p *TerminalPrompter) ReadSecret(prompt string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return p.ReadLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
