package display

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled decides whether output should be styled. mode is the
// configured "auto", "always", or "never"; auto requires stdout to be a
// terminal with a color-capable profile.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
