// Package clipboard copies generated passwords to the system clipboard.
// Copying is best-effort: callers report a failure and carry on.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var (
	ErrUnsupported = errors.New("clipboard is not supported on this system")
	ErrDisabled    = errors.New("clipboard is disabled")
)

// Writer accepts text destined for the clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Disabled is a Writer that always refuses to copy.
type Disabled struct{}

func (Disabled) WriteAll(string) error { return ErrDisabled }

// New returns the system clipboard when enabled, Disabled otherwise.
func New(enabled bool) Writer {
	if !enabled {
		return Disabled{}
	}
	return System{}
}
