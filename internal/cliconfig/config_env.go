package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PROCSTART_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", os.Getenv("PROCSTART_FORMAT"), &cfg.Format)

	if err := s.setIntFromString("repeat", os.Getenv("PROCSTART_REPEAT"), &cfg.Repeat); err != nil {
		return err
	}

	s.setBoolFromString("quiet", os.Getenv("PROCSTART_QUIET"), &cfg.Quiet)
	s.setBoolFromString("strict", os.Getenv("PROCSTART_STRICT"), &cfg.Strict)

	return nil
}
