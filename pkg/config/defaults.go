package config

const (
	defaultStorePath = "~/.jumpmap.json"

	defaultExistsMarker  = "✓"
	defaultMissingMarker = "✗"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Store: StoreConfig{
			Path: defaultStorePath,
		},
		Display: DisplayConfig{
			ExistsMarker:  defaultExistsMarker,
			MissingMarker: defaultMissingMarker,
			Color:         ColorAuto,
		},
		Log: LogConfig{
			Format: LogFormatPretty,
		},
	}
}
