package collect

import (
	"fmt"
	"strings"
)

// FormatEntry renders one file as a headed block.
func FormatEntry(f FileContent) string {
	return fmt.Sprintf("### File: %s\n\n%s", f.Path, f.Content)
}

// Render joins the formatted file blocks with sep. With withTree set, a tree of
// the included files is placed in front as its own block. An empty result
// renders as the empty string.
func Render(r *Result, sep string, withTree bool) string {
	if r == nil || len(r.Files) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(r.Files)+1)
	if withTree {
		blocks = append(blocks, GenerateTree(r.Base, r.Paths()))
	}
	for _, f := range r.Files {
		blocks = append(blocks, FormatEntry(f))
	}
	return strings.Join(blocks, sep)
}
