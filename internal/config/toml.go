// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Test TestConfig `toml:"test"`
}

// TestConfig maps typing test settings.
type TestConfig struct {
	Words           *int     `toml:"words"`
	WordFile        *string  `toml:"word-file"`
	Corpus          *string  `toml:"corpus"`
	CapsPct         *float64 `toml:"caps"`
	PunctPct        *float64 `toml:"punct"`
	PunctSet        *string  `toml:"punct-set"`
	ASCIIOnly       *bool    `toml:"ascii-only"`
	WidthPct        *float64 `toml:"width-pct"`
	MaxWordsPerLine *int     `toml:"max-words-per-line"`
	FooterLines     *int     `toml:"footer-lines"`
	MinWidth        *int     `toml:"min-width"`
	Seed            *int64   `toml:"seed"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
