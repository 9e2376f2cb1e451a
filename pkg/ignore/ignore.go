// Package ignore implements gitignore-style exclusion lists used to prune the
// collector's directory walks.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-project ignore file looked up in the base directory.
const FileName = ".snapclipignore"

// EnvGlobal names the environment variable holding a global ignore file path.
const EnvGlobal = "SNAPCLIP_IGNORE"

// Pattern is a compiled ignore line.
type Pattern struct {
	Regexp *regexp.Regexp
	Negate bool   // Line started with '!'.
	Line   string // Original pattern line.
	LineNo int    // 1-based line number in its source.
	Source string // File the line came from, empty for inline lines.
}

// Matcher holds an ordered list of patterns. The last matching pattern wins,
// so a negated line can re-include a path excluded earlier.
type Matcher struct {
	Patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Matcher.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Load compiles the given ignore files in order. Empty paths and files that
// do not exist are skipped.
func Load(logger *zap.Logger, paths ...string) (*Matcher, error) {
	m := New(logger)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := m.CompileFile(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
				continue
			}
			return nil, err
		}
	}
	return m, nil
}

// CompileFile reads an ignore file and appends its patterns.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	before := len(m.Patterns)
	m.compile(path, lines)
	m.logger.Debug("Compiled ignore file",
		zap.String("filePath", path),
		zap.Int("patternCount", len(m.Patterns)-before))
	return nil
}

// CompileLines appends inline patterns.
func (m *Matcher) CompileLines(lines ...string) {
	m.compile("", lines)
}

func (m *Matcher) compile(source string, lines []string) {
	for i, line := range lines {
		re, negate, err := parseLine(line)
		if err != nil {
			m.logger.Warn("Invalid ignore pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if re == nil {
			continue
		}
		m.Patterns = append(m.Patterns, &Pattern{
			Regexp: re,
			Negate: negate,
			Line:   line,
			LineNo: i + 1,
			Source: source,
		})
	}
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Patterns)
}

// Match reports whether relPath, relative to the walk root, is ignored.
// A nil Matcher ignores nothing.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	ok, _ := m.MatchWithPattern(relPath, isDir)
	return ok
}

// MatchWithPattern is Match that also returns the deciding pattern.
func (m *Matcher) MatchWithPattern(relPath string, isDir bool) (bool, *Pattern) {
	if m == nil || len(m.Patterns) == 0 {
		return false, nil
	}

	path := normalizePath(relPath, isDir)
	matched := false
	var decided *Pattern
	for _, p := range m.Patterns {
		if p.Regexp.MatchString(path) {
			matched = !p.Negate
			decided = p
		}
	}
	if decided != nil {
		m.logger.Debug("Path matched ignore pattern",
			zap.String("path", path),
			zap.String("pattern", decided.Line),
			zap.Bool("ignored", matched))
	}
	return matched, decided
}

// normalizePath uses forward slashes and marks directories with a trailing slash.
func normalizePath(path string, isDir bool) string {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if isDir && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// parseLine turns one ignore line into a regular expression. It returns a nil
// regexp for blank lines and comments.
func parseLine(line string) (*regexp.Regexp, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")

	// A slash anywhere but the end ties the pattern to the walk root.
	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false, nil
	}

	var b strings.Builder
	if anchored {
		b.WriteString("^")
	} else {
		b.WriteString("^(|.*/)")
	}
	b.WriteString(wildcardToRegex(trimmed))
	if dirOnly {
		b.WriteString("/.*$")
	} else {
		b.WriteString("(/.*)?$")
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}

// wildcardToRegex converts '**', '*' and '?' to their regex equivalents and
// quotes everything else.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString("(.*/)?")
			i += 3
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(".*")
			i += 2
		case pattern[i] == '*':
			b.WriteString("[^/]*")
			i++
		case pattern[i] == '?':
			b.WriteString("[^/]")
			i++
		default:
			b.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
			i++
		}
	}
	return b.String()
}
