package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sitegate/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty value.
type JsonConfig struct {
	StorePath     *string `json:"store_path"`
	DirectoryFile *string `json:"directory_file"`
	ColorScheme   *string `json:"color_scheme"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set(&cfg.StorePath, jc.StorePath)
	set(&cfg.DirectoryFile, jc.DirectoryFile)
	set(&cfg.ColorScheme, jc.ColorScheme)
	set(&cfg.LogLevel, jc.LogLevel)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
