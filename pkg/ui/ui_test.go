package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrinterWritesLines(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	p := New(&buf)

	p.Header("Scanning %s", "root")
	p.Path("- %s", "a.go")
	p.Error("failed: %d", 3)

	assert.Equal(t, "Scanning root\n  - a.go\nfailed: 3\n", buf.String())
}

func TestNilPrinterDiscards(t *testing.T) {
	var p *Printer
	assert.NotPanics(t, func() {
		p.Info("nothing %s", "here")
		p.Success("still nothing")
	})
}
