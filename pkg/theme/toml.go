package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name      string   `toml:"name"`
	Logo      []string `toml:"logo"`
	Key       string   `toml:"key"`
	Value     string   `toml:"value"`
	Separator string   `toml:"separator"`
	Title     string   `toml:"title"`
}

var thHexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFile reads a theme from a TOML file and registers it. The theme
// becomes available to Get under its declared name.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	t, err := thParse(string(data))
	if err != nil {
		return fmt.Errorf("theme %s: %w", path, err)
	}
	thRegister(t)
	return nil
}

// thParse decodes and validates TOML theme text.
func thParse(text string) (Theme, error) {
	var raw thTOMLTheme
	if _, err := toml.Decode(text, &raw); err != nil {
		return Theme{}, err
	}
	if raw.Name == "" {
		return Theme{}, fmt.Errorf("theme has no name")
	}
	for _, c := range append([]string{raw.Key, raw.Value, raw.Separator, raw.Title}, raw.Logo...) {
		if c != "" && !thHexRe.MatchString(c) {
			return Theme{}, fmt.Errorf("invalid color %q", c)
		}
	}

	// Unset colors inherit from the default palette.
	t := Get("default")
	t.Name = raw.Name
	if len(raw.Logo) > 0 {
		t.Logo = raw.Logo
	}
	if raw.Key != "" {
		t.Key = raw.Key
	}
	if raw.Value != "" {
		t.Value = raw.Value
	}
	if raw.Separator != "" {
		t.Separator = raw.Separator
	}
	if raw.Title != "" {
		t.Title = raw.Title
	}
	return t, nil
}
