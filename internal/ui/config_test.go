package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/devoxx-schedule/internal/config"
)

func TestRunConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devoxx-schedule", "config.toml")
	a, out := newTestApp(t, config.Default())

	if err := a.runConfig(path, false, strings.NewReader("")); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	for _, want := range []string{"Created " + path, "[source]", "base_url            = https://dvbe19.cfp.dev", "(disabled)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunConfig_Edit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	a, out := newTestApp(t, config.Default())

	// keep base_url and data_dir, switch to line format, no archive,
	// reject an unknown theme then pick frappe
	input := "\n\nline\n-\nsolarized\nfrappe\n"
	if err := a.runConfig(path, true, strings.NewReader(input)); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if !strings.Contains(out.String(), "unknown theme: solarized") {
		t.Errorf("expected theme rejection:\n%s", out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if cfg.Source.Format != "line" {
		t.Errorf("format = %q, want line", cfg.Source.Format)
	}
	if cfg.HasArchive() {
		t.Errorf("archive should be disabled, got %q", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("theme = %q, want frappe", cfg.UI.Theme)
	}
	if cfg.Source.BaseURL != config.DefaultBaseURL {
		t.Errorf("base_url = %q, want default", cfg.Source.BaseURL)
	}
}

func TestRunConfig_EditInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	a, _ := newTestApp(t, config.Default())

	input := "ftp://example.com\n\n\n\n\n"
	if err := a.runConfig(path, true, strings.NewReader(input)); err == nil {
		t.Error("expected validation error for ftp base url")
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Source.BaseURL != config.DefaultBaseURL {
		t.Errorf("invalid edit should not be saved, base_url = %q", cfg.Source.BaseURL)
	}
}
