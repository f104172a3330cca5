package config

// Config holds runtime settings for the site CLI.
//
// Fields:
//   - StorePath: SQLite file that plays the browser's local storage.
//   - DirectoryFile: YAML user directory; empty means the built-in one.
//   - ColorScheme: OS color scheme override ("light" or "dark"); empty
//     means detect from the environment.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StorePath     string
	DirectoryFile string
	ColorScheme   string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "site.db"
	c.DirectoryFile = ""
	c.ColorScheme = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
