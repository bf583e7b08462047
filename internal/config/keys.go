package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Samit-B/school-management/internal/api"
)

// setter parses a raw value into the config
type setter func(cfg *Config, value string) error

var setters = map[string]setter{
	"base_url": func(cfg *Config, value string) error {
		normalized, err := api.NormalizeBaseURL(value)
		if err != nil {
			return err
		}
		cfg.BaseURL = normalized
		return nil
	},
	"timeout_seconds": func(cfg *Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("timeout_seconds must be a non-negative integer, got %q", value)
		}
		cfg.TimeoutSeconds = n
		return nil
	},
	"serial_requests":   boolSetter(func(cfg *Config) *bool { return &cfg.SerialRequests }),
	"verbose":           boolSetter(func(cfg *Config) *bool { return &cfg.Verbose }),
	"copy_to_clipboard": boolSetter(func(cfg *Config) *bool { return &cfg.CopyToClipboard }),
	"tui_theme": func(cfg *Config, value string) error {
		cfg.TUITheme = value
		return nil
	},
	"markdown.style": func(cfg *Config, value string) error {
		cfg.Markdown.Style = value
		return nil
	},
	"markdown.enable_emoji":      boolSetter(func(cfg *Config) *bool { return &cfg.Markdown.EnableEmoji }),
	"markdown.preserve_newlines": boolSetter(func(cfg *Config) *bool { return &cfg.Markdown.PreserveNewLines }),
	"markdown.table_wrap":        boolSetter(func(cfg *Config) *bool { return &cfg.Markdown.TableWrap }),
}

func boolSetter(field func(cfg *Config) *bool) setter {
	return func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", value)
		}
		*field(cfg) = b
		return nil
	}
}

// Keys returns the settable keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns the raw value to key
func (c *Config) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := set(c, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
