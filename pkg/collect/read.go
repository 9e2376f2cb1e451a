package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// readTextFile reads a file and decodes it as UTF-8 text. Windows and old Mac
// line endings are converted to '\n'.
func readTextFile(path string, logger *zap.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("error decoding file %s: %w", path, ErrNotText)
	}

	logger.Debug("Read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(data)))

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// skipReason turns a read error into a short reason for the skip record.
func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrNotText):
		return "not valid UTF-8 text"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, fs.ErrNotExist):
		return "file disappeared during the run"
	default:
		return err.Error()
	}
}
