// Package config loads the store root and the tool's settings.
//
// Precedence, lowest to highest:
//  1. Defaults
//  2. <root>/config.yaml
//  3. Environment variables (SFADSMS_*)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRoot    = "~/.SFADSMS"
	ConfigFileName = "config.yaml"
)

// Config holds the settings for one store
type Config struct {
	Root  string      `yaml:"-"`
	User  string      `yaml:"user"` // Actor written to the audit trail
	Log   LogConfig   `yaml:"log"`
	Audit AuditConfig `yaml:"audit"`
	Watch WatchConfig `yaml:"watch"`
}

// LogConfig configures the structured log file
type LogConfig struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file"` // Relative paths are resolved against the root
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
	Stderr    bool   `yaml:"stderr"`
}

// AuditConfig configures the SQLite audit trail
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// RootPath returns the store root from the SFADSMS_ROOT env var,
// falling back to DefaultRoot.
func RootPath() string {
	if env := os.Getenv("SFADSMS_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

// Default returns the built-in configuration for root
func Default(root string) *Config {
	return &Config{
		Root: ExpandHome(root),
		User: defaultUser(),
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
		Audit: AuditConfig{Enabled: true},
		Watch: WatchConfig{Debounce: 500 * time.Millisecond},
	}
}

// Load builds the configuration for root (RootPath when empty)
func Load(root string) (*Config, error) {
	if root == "" {
		root = RootPath()
	}
	cfg := Default(root)

	if err := cfg.loadFile(filepath.Join(cfg.Root, ConfigFileName)); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFile decodes the YAML file over the current values; a missing file is fine
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SFADSMS_USER"); v != "" {
		c.User = v
	}
	if v := os.Getenv("SFADSMS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the final configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("root must not be empty")
	}
	if strings.TrimSpace(c.User) == "" {
		return errors.New("user must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must be non-negative, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxFiles < 0 {
		return fmt.Errorf("log.max_files must be non-negative, got %d", c.Log.MaxFiles)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be non-negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// DataDir is where categories live
func (c *Config) DataDir() string {
	return filepath.Join(c.Root, ".data")
}

// ManifestPath is the registry file
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Root, "manifest.txt")
}

// LockPath is the single-process lock file
func (c *Config) LockPath() string {
	return filepath.Join(c.Root, ".lock")
}

// LogPath is the log file
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return filepath.Join(c.Root, "logs", "sfadsms.log")
	}
	return c.resolve(c.Log.File)
}

// AuditPath is the audit database
func (c *Config) AuditPath() string {
	if c.Audit.Path == "" {
		return filepath.Join(c.Root, "audit.db")
	}
	return c.resolve(c.Audit.Path)
}

func (c *Config) resolve(path string) string {
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func defaultUser() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "admin"
}
