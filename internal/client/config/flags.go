package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/sitegate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags handled here are kept from os.Args (see flagx.FilterArgs),
// so the JSON stage's -c/-config does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-u", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "local storage file")
	fs.StringVar(&cfg.DirectoryFile, "u", cfg.DirectoryFile, "user directory (YAML)")
	fs.StringVar(&cfg.ColorScheme, "m", cfg.ColorScheme, "color scheme override (light|dark)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
