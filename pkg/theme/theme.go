// Package theme defines the color palettes used when rendering a
// snapshot, with a registry of built-ins and optional TOML theme files.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the color palette for snapshot output. Colors are hex
// strings like "#7aa2f7".
type Theme struct {
	Name string

	// Logo is the gradient applied to the ASCII logo, top to bottom.
	Logo []string

	Key       string // field labels
	Value     string // field values
	Separator string // the ": " between label and value
	Title     string // the user@host heading
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to the default when the name is
// unknown.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
