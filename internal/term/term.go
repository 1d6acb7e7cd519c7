// Package term provides terminal detection for deciding whether log output
// on stderr should carry ANSI colors.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/codecflags/internal/config"
)

// ColorsEnabled resolves mode against f. In auto mode colors are used only
// when f is a TTY, NO_COLOR is unset (https://no-color.org) and TERM is
// not "dumb".
func ColorsEnabled(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
