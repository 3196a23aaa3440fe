package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains log level, format, and destination configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
}

// Ingest contains file-reading and probing configuration.
type Ingest struct {
	// ProbeLines bounds how many lines the multiplicity probe reads.
	ProbeLines int `toml:"probe_lines"`
	// LegacyCharsetFallback enables Windows-1252 decoding for files that
	// are not valid UTF-8.
	LegacyCharsetFallback bool `toml:"legacy_charset_fallback"`
}

// Output contains CLI output configuration.
type Output struct {
	Format string `toml:"format"`
}

// Config is the root configuration document.
type Config struct {
	Logging Logging `toml:"logging"`
	Ingest  Ingest  `toml:"ingest"`
	Output  Output  `toml:"output"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "luqy", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields defaults. The resolved path is returned
// alongside the config.
func Load(path string) (*Config, string, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		var err error
		if resolved, err = DefaultPath(); err != nil {
			return nil, "", err
		}
	} else {
		var err error
		if resolved, err = ExpandPath(resolved); err != nil {
			return nil, "", err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, resolved, fmt.Errorf("read config %q: %w", resolved, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, resolved, fmt.Errorf("parse config %q: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, resolved, err
	}
	if err := cfg.validate(); err != nil {
		return nil, resolved, err
	}
	return &cfg, resolved, nil
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:]), nil
	}
	return "", fmt.Errorf("unsupported home-relative path %q", path)
}
