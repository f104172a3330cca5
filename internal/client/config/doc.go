// Package config loads runtime configuration for the site CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   local storage file (SQLite), ":memory:" for a throwaway run
//	-u string   YAML user directory (default: built-in)
//	-m string   color scheme override: light or dark
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Keys that are absent keep their current value:
//
//	{
//	  "store_path": "site.db",
//	  "directory_file": "users.yaml",
//	  "color_scheme": "dark",
//	  "log_level": "debug"
//	}
package config
