package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline.
type Flag struct {
	// Name is the long flag name (e.g. "store").
	Name string

	// Shorthand is the one-letter short flag. Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "store.path").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling AddPersistentStringFlag and
// BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagStore     = "store"
	FlagColor     = "color"
	FlagLogFormat = "log-format"
)

// GlobalFlags are the persistent flags registered on the root command.
var GlobalFlags = FlagSet{
	FlagStore: {
		Name:        "store",
		ViperKey:    "store.path",
		Description: "Path to the bookmark file",
	},
	FlagColor: {
		Name:        "color",
		ViperKey:    "display.color",
		Description: "Colorize output: auto, always or never",
	},
	FlagLogFormat: {
		Name:        "log-format",
		ViperKey:    "log.format",
		Description: "Diagnostic log format: pretty, text or json",
	},
}

// AddPersistentStringFlag registers a persistent string flag on cmd from the
// given FlagSet. The flag's name, shorthand, default, and description all
// come from the FlagSet entry so they cannot drift across commands.
func AddPersistentStringFlag(cmd *cobra.Command, fs FlagSet, key string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultString(def.ViperKey)
	if def.Shorthand != "" {
		cmd.PersistentFlags().StringP(def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.PersistentFlags().String(def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this after InitViper to connect flags to the
// viper precedence chain (flag > env > config file > default). Only flags
// the user actually set override lower layers.
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(def.Name)
		}
		if f == nil {
			f = cmd.InheritedFlags().Lookup(def.Name)
		}
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaultString returns the default string value for a viper key from NewDefaultConfig.
func defaultString(viperKey string) string {
	v := viper.New()
	setViperDefaults(v)
	return v.GetString(viperKey)
}
