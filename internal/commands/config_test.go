package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Samit-B/school-management/internal/api"
	"github.com/Samit-B/school-management/internal/config"
)

func TestConfigCommand_OpensMenu(t *testing.T) {
	env := newTestEnv(t, &api.MockChatClient{})
	env.saveConfig(t, func(cfg *config.Config) { cfg.BaseURL = "http://from-file:8000" })
	t.Setenv("SCHOOLCHAT_BASE_URL", "http://from-env:8000")

	if _, _, err := env.run("", "config"); err != nil {
		t.Fatal(err)
	}

	if env.tui.configCalls != 1 || env.tui.configPath != env.path {
		t.Fatalf("RunConfig calls=%d path=%q", env.tui.configCalls, env.tui.configPath)
	}
	if env.tui.configCfg.BaseURL != "http://from-file:8000" {
		t.Errorf("menu should edit the stored file, got BaseURL %s", env.tui.configCfg.BaseURL)
	}
}

func TestConfigCommand_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, cfg config.Config)
	}{
		{
			name: "base url", key: "base_url", value: "http://10.0.0.5:8000/",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.BaseURL != "http://10.0.0.5:8000" {
					t.Errorf("BaseURL = %s", cfg.BaseURL)
				}
			},
		},
		{
			name: "serial", key: "serial_requests", value: "true",
			check: func(t *testing.T, cfg config.Config) {
				if !cfg.SerialRequests {
					t.Error("serial_requests not saved")
				}
			},
		},
		{
			name: "markdown style", key: "markdown.style", value: "dracula",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Markdown.Style != "dracula" {
					t.Errorf("Markdown.Style = %s", cfg.Markdown.Style)
				}
			},
		},
		{name: "unknown key", key: "model", value: "x", wantErr: true},
		{name: "bad value", key: "timeout_seconds", value: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &api.MockChatClient{})

			out, _, err := env.run("", "config", "set", tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.key+" updated in "+env.path) {
				t.Errorf("stdout = %q", out)
			}

			cfg, err := config.LoadFile(env.path)
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestConfigCommand_SetDoesNotPersistEnvironment(t *testing.T) {
	env := newTestEnv(t, &api.MockChatClient{})
	t.Setenv("SCHOOLCHAT_VERBOSE", "true")

	if _, _, err := env.run("", "config", "set", "copy_to_clipboard", "true"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFile(env.path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Verbose {
		t.Error("environment overrides must not be written to config.json")
	}
	if !cfg.CopyToClipboard {
		t.Error("copy_to_clipboard not saved")
	}
}

func TestConfigCommand_Show(t *testing.T) {
	env := newTestEnv(t, &api.MockChatClient{})
	t.Setenv("SCHOOLCHAT_TIMEOUT_SECONDS", "42")

	out, _, err := env.run("", "config", "show", "--base-url", "https://school.example.org")
	if err != nil {
		t.Fatal(err)
	}

	var cfg config.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("show should print JSON: %v\n%s", err, out)
	}
	if cfg.TimeoutSeconds != 42 || cfg.BaseURL != "https://school.example.org" {
		t.Errorf("effective config = %+v", cfg)
	}
}

func TestConfigCommand_Path(t *testing.T) {
	env := newTestEnv(t, &api.MockChatClient{})

	out, _, err := env.run("", "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != env.path {
		t.Errorf("path = %q, want %q", out, env.path)
	}
}
