package config

import (
	"fmt"
	"strings"
)

// Config represents the persistent jumpmap configuration stored as
// config.toml in the jumpmap config directory.
type Config struct {
	Version int           `toml:"version"`
	Store   StoreConfig   `toml:"store"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// StoreConfig locates the bookmark backing file.
type StoreConfig struct {
	// Path to the JSON document. A leading ~ expands to the home directory.
	Path string `toml:"path,omitempty"`
}

// DisplayConfig controls how bookmark listings are rendered.
type DisplayConfig struct {
	ExistsMarker  string `toml:"exists_marker,omitempty"`
	MissingMarker string `toml:"missing_marker,omitempty"`

	// Color is one of ColorAuto, ColorAlways or ColorNever.
	Color string `toml:"color,omitempty"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	// Format is one of LogFormatPretty, LogFormatText or LogFormatJSON.
	Format string `toml:"format,omitempty"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	LogFormatPretty = "pretty"
	LogFormatText   = "text"
	LogFormatJSON   = "json"
)

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"store.path": {
		get: func(c *Config) string { return c.Store.Path },
		set: func(c *Config, v string) error { c.Store.Path = v; return nil },
	},
	"display.exists_marker": {
		get: func(c *Config) string { return c.Display.ExistsMarker },
		set: func(c *Config, v string) error { c.Display.ExistsMarker = v; return nil },
	},
	"display.missing_marker": {
		get: func(c *Config) string { return c.Display.MissingMarker },
		set: func(c *Config, v string) error { c.Display.MissingMarker = v; return nil },
	},
	"display.color": {
		get: func(c *Config) string { return c.Display.Color },
		set: func(c *Config, v string) error {
			v = strings.ToLower(v)
			if err := ValidateColor(v); err != nil {
				return err
			}
			c.Display.Color = v
			return nil
		},
	},
	"log.format": {
		get: func(c *Config) string { return c.Log.Format },
		set: func(c *Config, v string) error {
			v = strings.ToLower(v)
			if err := ValidateLogFormat(v); err != nil {
				return err
			}
			c.Log.Format = v
			return nil
		},
	},
}

// ValidateColor checks a display.color value.
func ValidateColor(v string) error {
	switch v {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid value for display.color: %q (expected auto, always or never)", v)
	}
}

// ValidateLogFormat checks a log.format value.
func ValidateLogFormat(v string) error {
	switch v {
	case LogFormatPretty, LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid value for log.format: %q (expected pretty, text or json)", v)
	}
}
