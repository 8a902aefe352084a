package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Source.BaseURL != "https://dvbe19.cfp.dev" {
		t.Errorf("expected base_url https://dvbe19.cfp.dev, got %s", cfg.Source.BaseURL)
	}
	if cfg.Source.Format != "structured" {
		t.Errorf("expected format structured, got %s", cfg.Source.Format)
	}
	if cfg.Source.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.Source.TimeoutSeconds)
	}
	if cfg.Storage.DBPath != "" {
		t.Errorf("expected no archive by default, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.Log.Debug {
		t.Error("expected debug logging off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Source.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base_url, got %s", cfg.Source.BaseURL)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[source]
base_url = "http://localhost:8080"
data_dir = "/tmp/schedule"
format = "line"
timeout_seconds = 3
requests_per_second = 0

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
tick_millis = 100

[log]
debug = true
path = "/tmp/debug.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Source.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base_url http://localhost:8080, got %s", cfg.Source.BaseURL)
	}
	if cfg.Source.DataDir != "/tmp/schedule" {
		t.Errorf("expected data_dir /tmp/schedule, got %s", cfg.Source.DataDir)
	}
	if cfg.ScheduleFormat() != schedule.FormatLine {
		t.Errorf("expected line format, got %s", cfg.ScheduleFormat())
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.Timeout())
	}
	if cfg.Source.RequestsPerSecond != 0 {
		t.Errorf("expected rate limiting disabled, got %v", cfg.Source.RequestsPerSecond)
	}
	if !cfg.HasArchive() || cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("expected tick 100ms, got %s", cfg.TickInterval())
	}
	if !cfg.Log.Debug || cfg.Log.Path != "/tmp/debug.log" {
		t.Errorf("expected debug log at /tmp/debug.log, got %+v", cfg.Log)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[source]
base_url = "http://localhost:8080"
data_dir = "/tmp/schedule"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("DEVOXX_BASE_URL", "http://localhost:9090")
	t.Setenv("DEVOXX_FORMAT", "txt")
	t.Setenv("DEVOXX_DB_PATH", "/tmp/archive.db")
	t.Setenv("DEVOXX_DEBUG", "true")
	t.Setenv("DEVOXX_LOG_PATH", "/tmp/env.log")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Source.BaseURL != "http://localhost:9090" {
		t.Errorf("expected base_url from env, got %s", cfg.Source.BaseURL)
	}
	// File value should be kept when no env override
	if cfg.Source.DataDir != "/tmp/schedule" {
		t.Errorf("expected data_dir from file, got %s", cfg.Source.DataDir)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme from file, got %s", cfg.UI.Theme)
	}
	// Env should override default
	if cfg.ScheduleFormat() != schedule.FormatLine {
		t.Errorf("expected line format from env, got %s", cfg.ScheduleFormat())
	}
	if cfg.Storage.DBPath != "/tmp/archive.db" {
		t.Errorf("expected db_path from env, got %s", cfg.Storage.DBPath)
	}
	if !cfg.Log.Debug || cfg.Log.Path != "/tmp/env.log" {
		t.Errorf("expected debug log from env, got %+v", cfg.Log)
	}
}

func TestLoadFrom_InvalidDebugEnv(t *testing.T) {
	t.Setenv("DEVOXX_DEBUG", "sometimes")
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for unparsable DEVOXX_DEBUG")
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[source\nbase_url = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"relative base url", func(c *Config) { c.Source.BaseURL = "dvbe19.cfp.dev" }},
		{"ftp base url", func(c *Config) { c.Source.BaseURL = "ftp://dvbe19.cfp.dev" }},
		{"empty data dir", func(c *Config) { c.Source.DataDir = "" }},
		{"unknown format", func(c *Config) { c.Source.Format = "xml" }},
		{"zero timeout", func(c *Config) { c.Source.TimeoutSeconds = 0 }},
		{"negative rate", func(c *Config) { c.Source.RequestsPerSecond = -1 }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }},
		{"zero tick", func(c *Config) { c.UI.TickMillis = 0 }},
		{"debug without path", func(c *Config) { c.Log.Debug = true; c.Log.Path = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Source.DataDir = filepath.Join(tmpDir, "schedule")
	cfg.Source.Format = "line"
	cfg.UI.Theme = "frappe"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Source.DataDir != cfg.Source.DataDir {
		t.Errorf("expected data_dir %s, got %s", cfg.Source.DataDir, loaded.Source.DataDir)
	}
	if loaded.ScheduleFormat() != schedule.FormatLine {
		t.Errorf("expected line format, got %s", loaded.ScheduleFormat())
	}
	if loaded.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", loaded.UI.Theme)
	}
}
