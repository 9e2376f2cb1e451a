package collect

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"snapclip/pkg/ignore"

	"go.uber.org/zap"
)

// pathSeparators holds the characters stripped from targets before they are
// used as keywords or joined to the base directory.
const pathSeparators = "/" + string(os.PathSeparator)

// matchSet is the set of matched absolute paths.
type matchSet map[string]struct{}

func (s matchSet) add(path string) { s[path] = struct{}{} }

// matchExact adds every target that names an existing file or folder under base.
func (c *Collector) matchExact(base string, targets []string, set matchSet) int {
	hits := 0
	for _, target := range targets {
		rel := strings.TrimLeft(target, pathSeparators)
		if rel == "" {
			continue
		}
		full := filepath.Join(base, rel)
		if _, err := os.Stat(full); err != nil {
			continue
		}
		set.add(full)
		hits++
		c.out.Path("Found exact path: %s", full)
	}
	return hits
}

// keywords lowercases the targets and removes path separators from them.
func keywords(targets []string) []string {
	out := make([]string, 0, len(targets))
	for _, target := range targets {
		kw := strings.ToLower(target)
		for _, sep := range pathSeparators {
			kw = strings.ReplaceAll(kw, string(sep), "")
		}
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// matchKeywords walks base and adds every file or folder whose name contains
// a keyword. Each keyword that matches an entry counts as one hit.
func (c *Collector) matchKeywords(ctx context.Context, base string, kws []string, gi *ignore.Matcher, set matchSet) (int, error) {
	if len(kws) == 0 {
		return 0, nil
	}

	hits := 0
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			c.logger.Warn("Error accessing path during keyword scan", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == base {
			return nil
		}

		rel, _ := filepath.Rel(base, path)
		if gi.Match(rel, d.IsDir()) {
			c.logger.Debug("Skipping ignored path during keyword scan", zap.String("path", path))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := strings.ToLower(d.Name())
		for _, kw := range kws {
			if strings.Contains(name, kw) {
				set.add(path)
				hits++
			}
		}
		return nil
	})
	return hits, err
}

// expand returns the candidate text files for one matched path: the path
// itself for a file, or every text file below it for a folder.
func (c *Collector) expand(ctx context.Context, base, path string, gi *ignore.Matcher) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		c.logger.Warn("Matched path can no longer be accessed", zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	if !info.IsDir() {
		if c.isTextFile(path) {
			return []string{path}, nil
		}
		return nil, nil
	}

	// WalkDir does not follow a symlinked root, so walk its target and
	// report every file under the matched path.
	root, err := filepath.EvalSymlinks(path)
	if err != nil {
		c.logger.Warn("Matched folder cannot be resolved", zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			c.logger.Warn("Error accessing path during expansion", zap.String("path", p), zap.Error(err))
			return nil
		}

		shown := path
		if p != root {
			sub, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return nil
			}
			shown = filepath.Join(path, sub)
		}

		rel, _ := filepath.Rel(base, shown)
		if shown != path && gi.Match(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && c.isTextFile(shown) {
			files = append(files, shown)
		}
		return nil
	})
	return files, err
}

func (c *Collector) isTextFile(path string) bool {
	return IsTextFile(filepath.Base(path), c.cfg.AllowExtensions, c.cfg.DenyExtensions)
}
