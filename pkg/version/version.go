// Package version holds the snapclip build information set through -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Name is the binary name used in version output and log fields.
const Name = "snapclip"

// Set at build time, e.g.
// go build -ldflags "-X 'snapclip/pkg/version.Version=0.3.0' -X 'snapclip/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes one build of the binary and the clipboard it will use.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Platform  string // GOOS/GOARCH
	GoVersion string
	// Clipboard describes the clipboard backend state; empty omits it.
	Clipboard string
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

// IsRelease reports whether the binary was built with a release version.
func (i Info) IsRelease() bool {
	return i.Version != "" && i.Version != "dev"
}

// String renders the build as one line. Commit and build time are left out
// when unset, which is the case for `go run` and `go install` builds.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", Name, i.Version)

	var extra []string
	if i.Commit != "" {
		extra = append(extra, "commit "+i.Commit)
	}
	if i.BuildTime != "" {
		extra = append(extra, "built "+i.BuildTime)
	}
	extra = append(extra, i.GoVersion, i.Platform)
	fmt.Fprintf(&b, " (%s)", strings.Join(extra, ", "))

	if i.Clipboard != "" {
		fmt.Fprintf(&b, "\nclipboard: %s", i.Clipboard)
	}
	return b.String()
}
