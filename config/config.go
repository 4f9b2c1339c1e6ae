package config

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

type (
	Config struct {
		Codec  Codec  `toml:"codec"`
		Log    Log    `toml:"log"`
		Output Output `toml:"output"`
	}
	Codec struct {
		StrictMagic   bool `toml:"strict_magic"`
		LenientLength bool `toml:"lenient_length"`
	}
	Log struct {
		Level string `toml:"level"`
	}
	Output struct {
		Indent string `toml:"indent"`
	}
)

func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Output: Output{Indent: "  "},
	}
}

// Load reads the TOML file at path over Default. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config.Load error: path %s", path)
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return nil, errors.Wrapf(err, "config.Load error: path %s", path)
	}
	return &cfg, nil
}

// LogLevel falls back to info for an unparsable level.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
