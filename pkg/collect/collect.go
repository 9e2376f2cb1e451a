// Package collect finds files by keyword or exact path under a base directory
// and combines their text into a single document.
package collect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"snapclip/pkg/config"
	"snapclip/pkg/ignore"
	"snapclip/pkg/ui"

	"go.uber.org/zap"
)

// Collector runs keyword searches against a directory tree.
type Collector struct {
	cfg    *config.Config
	logger *zap.Logger
	out    *ui.Printer
}

// New creates a Collector. A nil cfg uses config.Default, a nil logger logs
// nothing and a nil printer suppresses progress output.
func New(cfg *config.Config, logger *zap.Logger, out *ui.Printer) *Collector {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{cfg: cfg, logger: logger, out: out}
}

// Collect matches targets against base and reads every matching text file.
// A base that is not a directory yields an error wrapping ErrNotDirectory;
// individual files that cannot be read are recorded in Result.Skipped.
func (c *Collector) Collect(ctx context.Context, base string, targets []string) (*Result, error) {
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("base path '%s' is %w", base, ErrNotDirectory)
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	c.logger.Debug("Starting collection", zap.String("base", absBase), zap.Strings("targets", targets))
	c.out.Header("Scanning project root: %s", base)

	gi, err := ignore.Load(c.logger, c.cfg.IgnoreFile, filepath.Join(absBase, ignore.FileName))
	if err != nil {
		c.logger.Warn("Failed to load ignore patterns, continuing without them", zap.Error(err))
		gi = nil
	} else if gi.Len() > 0 {
		c.logger.Debug("Loaded ignore patterns", zap.Int("totalPatterns", gi.Len()))
	}

	set := make(matchSet)
	hits := c.matchExact(absBase, targets, set)

	kwHits, err := c.matchKeywords(ctx, absBase, keywords(targets), gi, set)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", absBase, err)
	}
	hits += kwHits

	result := &Result{
		Base:        absBase,
		Matched:     sortedKeys(set),
		KeywordHits: hits,
	}
	c.out.Info("Found %d unique files/folders matching %d keyword(s).", len(result.Matched), hits)

	seen := make(map[string]struct{})
	for _, matched := range result.Matched {
		candidates, err := c.expand(ctx, absBase, matched, gi)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", matched, err)
		}

		read := 0
		for _, path := range candidates {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}

			text, err := readTextFile(path, c.logger)
			if err != nil {
				reason := skipReason(err)
				c.logger.Warn("Skipping file", zap.String("filePath", path), zap.String("reason", reason))
				result.Skipped = append(result.Skipped, SkippedFile{Path: path, Reason: reason})
				continue
			}
			result.Files = append(result.Files, FileContent{Path: path, Content: text})
			read++
		}
		if read > 0 {
			c.out.Path("Processed %d file(s) from: %s", read, matched)
		}
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	if len(result.Skipped) > 0 {
		c.out.Warning("\nSkipped %d unreadable file(s).", len(result.Skipped))
	}
	c.out.Success("\nTotal code files processed: %d", len(result.Files))
	c.logger.Debug("Completed collection",
		zap.Int("matched", len(result.Matched)),
		zap.Int("files", len(result.Files)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

func sortedKeys(set matchSet) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
