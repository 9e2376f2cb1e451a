// Package config loads the collector settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "SNAPCLIP_CONFIG"

// DefaultSeparator is placed between file blocks in the combined output.
const DefaultSeparator = "\n\n---\n\n"

// Config holds the collector settings.
type Config struct {
	// AllowExtensions lists the name suffixes treated as readable text.
	AllowExtensions []string `yaml:"allow_extensions"`

	// DenyExtensions lists suffixes that are never read, even when allowed.
	DenyExtensions []string `yaml:"deny_extensions"`

	// Separator joins the formatted file blocks.
	Separator string `yaml:"separator"`

	// IgnoreFile is an optional global ignore file applied to every walk.
	IgnoreFile string `yaml:"ignore_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AllowExtensions: []string{
			".py", ".dart", ".js", ".ts", ".jsx", ".tsx", ".java", ".kt",
			".c", ".cpp", ".h", ".cs", ".go", ".html", ".css", ".scss",
			".json", ".yaml", ".yml", ".md", ".sh", ".txt",
		},
		DenyExtensions: []string{
			".png", ".jpg", ".jpeg", ".gif", ".zip", ".exe", ".bin", ".db",
			".lock", ".log", ".dat", ".sqlite", ".webp",
		},
		Separator: DefaultSeparator,
	}
}

// Load reads the config at path, falling back to $SNAPCLIP_CONFIG when path is
// empty. With neither set, the defaults are returned. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.AllowExtensions = normalizeExtensions(cfg.AllowExtensions)
	cfg.DenyExtensions = normalizeExtensions(cfg.DenyExtensions)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used for a run.
func (c *Config) Validate() error {
	if len(c.AllowExtensions) == 0 {
		return errors.New("allow_extensions must not be empty")
	}
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	return nil
}

// normalizeExtensions lowercases entries and adds the leading dot when missing.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
