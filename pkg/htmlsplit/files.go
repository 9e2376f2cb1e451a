package htmlsplit

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ReadDocument reads the input page.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFiles writes the sections into dir under the given names, replacing
// any existing files. It returns the paths written, in style, script, markup
// order.
func WriteFiles(dir string, s Sections, names Names, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	outputs := []struct {
		name    string
		content string
	}{
		{names.Style, s.Style},
		{names.Script, s.Script},
		{names.Markup, s.Markup},
	}

	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := os.WriteFile(path, []byte(o.content), 0644); err != nil {
			logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("Wrote file", zap.String("path", path), zap.Int("sizeBytes", len(o.content)))
		written = append(written, path)
	}
	return written, nil
}
