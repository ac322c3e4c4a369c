package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// HomeEnv overrides the ~/.chainnexus directory
const HomeEnv = "CHAINNEXUS_HOME"

// Log formats accepted in the [log] section
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the ChainNexus configuration
type Config struct {
	Version int `toml:"version"`
	Log     Log `toml:"log"`
}

// Log represents logging preferences
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Version: 1,
		Log: Log{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load reads config from Path(). A missing file yields the defaults and
// nothing is written.
func Load() (*Config, error) {
	path := Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Apply defaults for any missing fields
	defaults := Defaults()
	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes config to Path() atomically
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.Indent = ""
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// writeAtomic writes content next to path and renames it into place
func writeAtomic(path string, content []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Validate checks the logging section
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return ValidateFormat(c.Log.Format)
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses debug, info, warn or error
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level '%s': use debug, info, warn or error", s)
	}
}

// ValidateFormat checks a log format name
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatAuto, FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format '%s': use auto, text or json", format)
	}
}

// Home returns the ChainNexus state directory
func Home() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".chainnexus")
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(Home(), "cfg.toml")
}
