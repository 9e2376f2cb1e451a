package collect

import "errors"

// ErrNotDirectory is returned when the base path is missing or not a directory.
var ErrNotDirectory = errors.New("not a valid directory")

// ErrNotText marks a file whose content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// FileContent holds the text of one included file.
type FileContent struct {
	Path    string // Absolute path of the file.
	Content string // Decoded text with line endings normalized to '\n'.
}

// SkippedFile records a candidate that passed the extension filter but could
// not be included.
type SkippedFile struct {
	Path   string
	Reason string
}

// Result is the outcome of one collector run.
type Result struct {
	Base        string        // Absolute base directory.
	Matched     []string      // Unique matched files and folders, sorted.
	KeywordHits int           // Number of individual target matches.
	Files       []FileContent // Included files, sorted by path.
	Skipped     []SkippedFile // Unreadable or undecodable candidates.
}

// Paths returns the paths of the included files in output order.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}
