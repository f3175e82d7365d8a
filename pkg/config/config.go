// Package config loads mirafetch configuration from TOML.
package config

// Config is the top-level mirafetch configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
}

// GeneralConfig holds behaviour toggles.
type GeneralConfig struct {
	// LogLevel controls slog verbosity: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// DisplayConfig controls output rendering.
type DisplayConfig struct {
	// Theme names a built-in theme or one defined in a theme file.
	Theme string `toml:"theme"`

	// Color is "auto" (tty detection), "always", or "never".
	Color string `toml:"color"`

	// Logo overrides the distribution id used to select the ASCII logo;
	// empty means use the probed id.
	Logo string `toml:"logo"`

	// Hide lists snapshot fields to omit, by label (e.g. "Battery").
	Hide []string `toml:"hide"`
}

// Hidden reports whether a field label is configured out of the output.
func (d DisplayConfig) Hidden(label string) bool {
	for _, h := range d.Hide {
		if h == label {
			return true
		}
	}
	return false
}
