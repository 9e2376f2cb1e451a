// Package ui prints colored, human-readable progress lines to the console.
package ui

import (
	"io"

	"github.com/fatih/color"
)

// Line styles used by Printer.
var (
	// HeaderColor styles section headers.
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	// InfoColor styles progress lines.
	InfoColor    = color.New(color.FgCyan)
	// SuccessColor styles completion lines.
	SuccessColor = color.New(color.FgGreen)
	// WarningColor styles recoverable problems.
	WarningColor = color.New(color.FgYellow)
	// ErrorColor styles failures.
	ErrorColor   = color.New(color.FgRed)
	// PathColor styles listed paths.
	PathColor    = color.New(color.FgYellow)
)

// Printer writes styled lines to an output stream. A nil Printer discards
// everything, so components can take one optionally.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints a section header line.
func (p *Printer) Header(format string, a ...interface{}) {
	p.print(HeaderColor, format, a...)
}

// Info prints a progress line.
func (p *Printer) Info(format string, a ...interface{}) {
	p.print(InfoColor, format, a...)
}

// Success prints a completion line.
func (p *Printer) Success(format string, a ...interface{}) {
	p.print(SuccessColor, format, a...)
}

// Warning prints a recoverable problem.
func (p *Printer) Warning(format string, a ...interface{}) {
	p.print(WarningColor, format, a...)
}

// Error prints a failure.
func (p *Printer) Error(format string, a ...interface{}) {
	p.print(ErrorColor, format, a...)
}

// Path prints an indented path line.
func (p *Printer) Path(format string, a ...interface{}) {
	p.print(PathColor, "  "+format, a...)
}

func (p *Printer) print(c *color.Color, format string, a ...interface{}) {
	if p == nil || p.w == nil {
		return
	}
	c.Fprintf(p.w, format+"\n", a...)
}
