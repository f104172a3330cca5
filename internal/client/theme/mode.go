package theme

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sitegate/internal/common"
)

// Mode is a theme value. Light and Dark are effective values; System is a
// logical value that defers to the OS color-scheme preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

var cycle = []Mode{Light, Dark, System}

// ParseMode accepts light, dark or system (case-insensitive).
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Light, Dark, System:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownThemeMode, s)
}

// Effective reduces a logical mode to light or dark. System and any
// unrecognised value follow prefersDark.
func Effective(logical Mode, prefersDark bool) Mode {
	switch logical {
	case Light, Dark:
		return logical
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Next advances light → dark → system → light. An unrecognised value
// starts the cycle over at light.
func Next(m Mode) Mode {
	for i, c := range cycle {
		if c == m {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// Label is the text of the theme toggle control.
func Label(logical, effective Mode) string {
	switch {
	case logical == System:
		return fmt.Sprintf("🌓 System (%s)", effective)
	case effective == Dark:
		return "🌙 Dark"
	default:
		return "🌞 Light"
	}
}
