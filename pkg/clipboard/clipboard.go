// Package clipboard copies generated text to the operating system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ErrUnavailable means the platform has no usable clipboard utility
// (on Linux: none of xsel, xclip, wl-copy or termux-clipboard-set).
var ErrUnavailable = errors.New("no clipboard utility is available on this system")

// Writer receives the combined output.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// System returns the OS clipboard.
func System() Writer {
	return systemWriter{}
}

// CheckAvailable reports ErrUnavailable when the OS clipboard cannot be used.
func CheckAvailable() error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return nil
}

type streamWriter struct {
	w io.Writer
}

func (s streamWriter) WriteAll(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

// Stream returns a Writer that writes the text to w unchanged.
func Stream(w io.Writer) Writer {
	return streamWriter{w: w}
}
