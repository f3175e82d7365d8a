// Package osrelease provides a lazily-populated, concurrency-safe view of
// an os-release style key/value descriptor such as /etc/os-release.
//
// The descriptor is read and parsed at most once per Map, on first lookup.
// If the file cannot be read the map stays empty for the lifetime of the
// process; the read is never retried. This collapse is deliberate: callers
// treat a missing key and a missing file identically, as "not available".
package osrelease

import (
	"os"
	"strings"
	"sync"
)

// DefaultPath is the standard location of the release descriptor on Linux.
const DefaultPath = "/etc/os-release"

// Map is a populate-once view of a release descriptor. The zero value is
// not usable; construct with New.
type Map struct {
	path   string
	once   sync.Once
	values map[string]string
}

// New returns a Map backed by the descriptor at path. The file is not
// touched until the first lookup.
func New(path string) *Map {
	return &Map{path: path}
}

// Lookup returns the value for key and whether it was present. The first
// call (among possibly many concurrent ones) populates the map; concurrent
// callers block until population finishes and never observe a partial map.
func (m *Map) Lookup(key string) (string, bool) {
	m.once.Do(m.populate)
	v, ok := m.values[key]
	return v, ok
}

// Get returns the value for key, or the empty string if absent.
func (m *Map) Get(key string) string {
	v, _ := m.Lookup(key)
	return v
}

func (m *Map) populate() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		// Unreadable descriptor: stay permanently empty.
		m.values = map[string]string{}
		return
	}
	m.values = Parse(string(data))
}

// Parse splits descriptor text into a key/value map. Each non-empty line is
// split on the first '='; one layer of surrounding double quotes is
// stripped from the value. Lines without an '=' are ignored. Keys are
// assumed unique, so lines may be processed in any order.
func Parse(text string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[key] = unquote(value)
	}
	return values
}

// unquote strips one layer of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
