package theme

import (
	"os"
	"strconv"
	"strings"
)

// SchemeSource reports the operating system's dark-mode preference.
type SchemeSource interface {
	PrefersDark() bool
}

// StaticScheme is a fixed answer, used when the preference is configured
// explicitly.
type StaticScheme bool

func (s StaticScheme) PrefersDark() bool { return bool(s) }

// EnvScheme guesses the desktop preference from the environment:
// GTK_THEME ending in ":dark", or a COLORFGBG background that is a dark
// ANSI color. With no signal it reports light.
type EnvScheme struct {
	lookup func(string) (string, bool)
}

func NewEnvScheme() EnvScheme {
	return EnvScheme{lookup: os.LookupEnv}
}

func (e EnvScheme) PrefersDark() bool {
	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup("GTK_THEME"); ok && strings.HasSuffix(strings.ToLower(v), ":dark") {
		return true
	}

	if v, ok := lookup("COLORFGBG"); ok {
		parts := strings.Split(v, ";")
		bg, err := strconv.Atoi(parts[len(parts)-1])
		if err == nil {
			// 0-6 and 8 are the dark entries of the 16-color palette
			return (bg >= 0 && bg <= 6) || bg == 8
		}
	}

	return false
}
