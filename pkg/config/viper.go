package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papercomputeco/jumpmap/pkg/dotdir"
)

// EnvPrefix prefixes every environment variable jumpmap reads through viper.
const EnvPrefix = "JUMPMAP"

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads config.toml from the
// resolved config directory, and binds environment variables with the
// JUMPMAP_ prefix. The config directory is only resolved, never created, so
// a missing or unusable location falls back to defaults.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (JUMPMAP_STORE_PATH, JUMPMAP_DISPLAY_COLOR, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string, opts ...dotdir.Option) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager(opts...)
	target, err := ddm.Resolve(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("store.path", d.Store.Path)

	v.SetDefault("display.exists_marker", d.Display.ExistsMarker)
	v.SetDefault("display.missing_marker", d.Display.MissingMarker)
	v.SetDefault("display.color", d.Display.Color)

	v.SetDefault("log.format", d.Log.Format)
}

// Resolved reads the effective configuration out of v and validates the
// enumerated fields.
func Resolved(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Version: v.GetInt("version"),
		Store: StoreConfig{
			Path: v.GetString("store.path"),
		},
		Display: DisplayConfig{
			ExistsMarker:  v.GetString("display.exists_marker"),
			MissingMarker: v.GetString("display.missing_marker"),
			Color:         strings.ToLower(v.GetString("display.color")),
		},
		Log: LogConfig{
			Format: strings.ToLower(v.GetString("log.format")),
		},
	}

	if err := ValidateColor(cfg.Display.Color); err != nil {
		return nil, err
	}
	if err := ValidateLogFormat(cfg.Log.Format); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}
