package sysinfo

import (
	"bytes"
	"os"
	"strings"
)

// siCString converts a NUL-terminated byte array field (utsname) to a Go
// string.
func siCString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// siReadTrimmed reads a short file and trims surrounding whitespace,
// collapsing any failure to "".
func siReadTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
