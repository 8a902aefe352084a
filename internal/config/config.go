// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

// DefaultBaseURL is the Devoxx Belgium 2019 CFP instance.
const DefaultBaseURL = "https://dvbe19.cfp.dev"

// Config holds the application configuration.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// SourceConfig holds where schedules come from.
type SourceConfig struct {
	BaseURL           string  `toml:"base_url"`            // online CFP host
	DataDir           string  `toml:"data_dir"`            // offline <day>.<ext> files
	Format            string  `toml:"format"`              // "structured" or "line"
	TimeoutSeconds    int     `toml:"timeout_seconds"`     // per HTTP request
	RequestsPerSecond float64 `toml:"requests_per_second"` // 0 disables rate limiting
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"` // optional schedule archive, used offline when set
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme      string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
	TickMillis int    `toml:"tick_millis"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Path  string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:           DefaultBaseURL,
			DataDir:           defaultDataDir(),
			Format:            "structured",
			TimeoutSeconds:    10,
			RequestsPerSecond: 2,
		},
		UI: UIConfig{
			Theme:      "mocha",
			TickMillis: 250,
		},
		Log: LogConfig{
			Path: "devoxx-schedule-debug.log",
		},
	}
}

// defaultDataDir returns the default offline schedule directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "schedule"
	}
	return filepath.Join(home, ".local", "share", "devoxx-schedule", "schedule")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "devoxx-schedule", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Source.DataDir = expandPath(cfg.Source.DataDir)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DEVOXX_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("DEVOXX_DATA_DIR"); v != "" {
		cfg.Source.DataDir = v
	}
	if v := os.Getenv("DEVOXX_FORMAT"); v != "" {
		cfg.Source.Format = v
	}

	if v := os.Getenv("DEVOXX_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("DEVOXX_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	if v := os.Getenv("DEVOXX_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing DEVOXX_DEBUG: %w", err)
		}
		cfg.Log.Debug = debug
	}
	if v := os.Getenv("DEVOXX_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.Source.BaseURL)
	}
	if c.Source.DataDir == "" {
		return errors.New("data_dir must be set")
	}
	if _, err := schedule.ParseFormat(c.Source.Format); err != nil {
		return err
	}
	if c.Source.TimeoutSeconds <= 0 {
		return errors.New("timeout_seconds must be positive")
	}
	if c.Source.RequestsPerSecond < 0 {
		return errors.New("requests_per_second must not be negative")
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if c.UI.TickMillis <= 0 {
		return errors.New("tick_millis must be positive")
	}
	if c.Log.Debug && c.Log.Path == "" {
		return errors.New("log path must be set when debug is enabled")
	}
	return nil
}

// ScheduleFormat returns the parsed offline document format.
func (c *Config) ScheduleFormat() schedule.Format {
	f, err := schedule.ParseFormat(c.Source.Format)
	if err != nil {
		return schedule.FormatStructured
	}
	return f
}

// Timeout returns the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// TickInterval returns the UI tick interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.UI.TickMillis) * time.Millisecond
}

// HasArchive reports whether a schedule archive is configured.
func (c *Config) HasArchive() bool {
	return c.Storage.DBPath != ""
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
