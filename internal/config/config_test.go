package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Samit-B/school-management/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != models.DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.BaseURL, models.DefaultBaseURL)
	}
	if cfg.TimeoutSeconds != 300 {
		t.Errorf("TimeoutSeconds = %d, want 300", cfg.TimeoutSeconds)
	}
	if cfg.SerialRequests {
		t.Error("serial requests must be off by default")
	}
	if cfg.Verbose {
		t.Error("Verbose should be false")
	}
	if cfg.Markdown.Style != "dark" {
		t.Errorf("Markdown.Style = %s, want dark", cfg.Markdown.Style)
	}
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if want := filepath.Join(home, ".schoolchat", "config.json"); path != want {
		t.Errorf("GetConfigPath() = %s, want %s", path, want)
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"base_url":"http://school.local:9000","serial_requests":true,"markdown":{"style":"light"}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.BaseURL != "http://school.local:9000" || !cfg.SerialRequests {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Markdown.Style != "light" {
		t.Errorf("Markdown.Style = %s, want light", cfg.Markdown.Style)
	}
	if cfg.TimeoutSeconds != 300 {
		t.Error("keys absent from the file keep their defaults")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("expected parse error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("parse failure should return defaults")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"base_url":"http://from-file:8000","verbose":false}`), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SCHOOLCHAT_BASE_URL", "http://from-env:8000")
	t.Setenv("SCHOOLCHAT_VERBOSE", "true")
	t.Setenv("SCHOOLCHAT_SERIAL_REQUESTS", "true")
	t.Setenv("SCHOOLCHAT_TIMEOUT_SECONDS", "30")
	t.Setenv("GLAMOUR_STYLE", "notty")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.BaseURL != "http://from-env:8000" {
		t.Errorf("BaseURL = %s, environment must win over the file", cfg.BaseURL)
	}
	if !cfg.Verbose || !cfg.SerialRequests || cfg.TimeoutSeconds != 30 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Markdown.Style != "notty" {
		t.Errorf("Markdown.Style = %s, want notty", cfg.Markdown.Style)
	}
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.BaseURL = "http://from-file:8000"
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	t.Setenv("SCHOOLCHAT_BASE_URL", "http://from-env:8000")

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got.BaseURL != "http://from-file:8000" {
		t.Errorf("BaseURL = %s, LoadFile must not apply the environment", got.BaseURL)
	}
}

func TestLoadFrom_BadEnv(t *testing.T) {
	t.Setenv("SCHOOLCHAT_TIMEOUT_SECONDS", "soon")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "config.json")); err == nil {
		t.Error("expected error for a non-numeric timeout")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.BaseURL = "https://school.example.com"
	cfg.CopyToClipboard = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	path := filepath.Join(home, ".schoolchat", "config.json")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}

	raw, _ := os.ReadFile(path)
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["base_url"] != "https://school.example.com" {
		t.Errorf("stored base_url = %v", decoded["base_url"])
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if loaded != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, cfg)
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(cfg Config) bool
	}{
		{"base_url", "http://10.0.0.5:8000/", false, func(c Config) bool { return c.BaseURL == "http://10.0.0.5:8000" }},
		{"base_url", "ftp://files", true, nil},
		{"base_url", "not a url", true, nil},
		{"timeout_seconds", "60", false, func(c Config) bool { return c.TimeoutSeconds == 60 }},
		{"timeout_seconds", "0", false, func(c Config) bool { return c.TimeoutSeconds == 0 }},
		{"timeout_seconds", "-1", true, nil},
		{"serial_requests", "true", false, func(c Config) bool { return c.SerialRequests }},
		{"verbose", "1", false, func(c Config) bool { return c.Verbose }},
		{"copy_to_clipboard", "maybe", true, nil},
		{"tui_theme", "nord", false, func(c Config) bool { return c.TUITheme == "nord" }},
		{"markdown.style", "light", false, func(c Config) bool { return c.Markdown.Style == "light" }},
		{"markdown.enable_emoji", "false", false, func(c Config) bool { return !c.Markdown.EnableEmoji }},
		{"default_model", "fast", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Set(%s, %s) left cfg = %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) == 0 || keys[0] != "base_url" {
		t.Errorf("Keys() = %v, want sorted keys starting with base_url", keys)
	}

	cfg := DefaultConfig()
	for _, k := range keys {
		if err := cfg.Set(k, "nonsense value"); err != nil && strings.Contains(err.Error(), "unknown config key") {
			t.Errorf("key %s listed but not settable", k)
		}
	}
}
