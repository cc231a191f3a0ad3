package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
)

// LoadTOML loads configuration from fuzzymatch.toml in dir. It returns
// nil without error when the file does not exist.
func LoadTOML(dir string) (*Config, error) {
	path := configPath(dir, TOMLFileName)
	data, err := readIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TOMLFileName, err)
	}
	if data == nil {
		return nil, nil
	}

	debug.LogConfig("loading %s\n", path)
	return parseTOML(data)
}

// parseTOML decodes data over Default, so absent keys keep their
// default values.
func parseTOML(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return cfg, nil
}
