package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML tags. Booleans are pointers so that an
// absent key can be told apart from an explicit false.
type FileConfig struct {
	Format string `toml:"format"`
	Repeat int    `toml:"repeat"`
	Quiet  *bool  `toml:"quiet"`
	Strict *bool  `toml:"strict"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.procstart/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".procstart", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", fc.Format, &cfg.Format)
	s.setInt("repeat", fc.Repeat, &cfg.Repeat)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)
	s.setBool("strict", fc.Strict, &cfg.Strict)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
