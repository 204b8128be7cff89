// Package config loads the optional TOML settings file the binary
// reads at startup. Command line flags override whatever it holds.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Bindings remaps the default keys. Values are single characters, or
// the word "space".
type Bindings struct {
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Dodge   string `toml:"dodge"`
	Restart string `toml:"restart"`
	Quit    string `toml:"quit"`
}

// Config carries the startup settings.
type Config struct {
	Seed    int64    `toml:"seed"`
	Debug   bool     `toml:"debug"`
	NoAudio bool     `toml:"no_audio"`
	LogFile string   `toml:"log_file"`
	Keys    Bindings `toml:"keys"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogFile: "warrenfall.log",
		Keys: Bindings{
			Up:      "w",
			Down:    "s",
			Left:    "a",
			Right:   "d",
			Dodge:   "space",
			Restart: "r",
			Quit:    "q",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
