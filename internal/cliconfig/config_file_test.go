package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
format = "json"
repeat = 3
quiet = true
strict = false
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig returned error: %v", err)
	}
	if fc.Format != "json" {
		t.Fatalf("expected format json, got %q", fc.Format)
	}
	if fc.Repeat != 3 {
		t.Fatalf("expected repeat 3, got %d", fc.Repeat)
	}
	if fc.Quiet == nil || !*fc.Quiet {
		t.Fatal("expected quiet to be present and true")
	}
	if fc.Strict == nil || *fc.Strict {
		t.Fatal("expected strict to be present and false")
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writeConfigFile(t, "format = [not toml")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		fc       FileConfig
		changed  map[string]bool
		initial  Config
		expected Config
	}{
		{
			name:     "applies all values",
			fc:       FileConfig{Format: "json", Repeat: 5, Quiet: boolPtr(true), Strict: boolPtr(true)},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{Format: "json", Repeat: 5, Quiet: true, Strict: true},
		},
		{
			name:     "respects changed flags",
			fc:       FileConfig{Format: "json", Repeat: 5},
			changed:  map[string]bool{"format": true},
			initial:  Config{Format: "text", Repeat: 1},
			expected: Config{Format: "text", Repeat: 5},
		},
		{
			name:     "absent keys keep defaults",
			fc:       FileConfig{},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
		{
			name:     "explicit false overrides",
			fc:       FileConfig{Quiet: boolPtr(false)},
			changed:  map[string]bool{},
			initial:  Config{Format: "text", Repeat: 1, Quiet: true},
			expected: Config{Format: "text", Repeat: 1, Quiet: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			if err := ApplyFileConfig(&cfg, tt.fc, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig returned error: %v", err)
			}
			if cfg != tt.expected {
				t.Fatalf("expected %+v, got %+v", tt.expected, cfg)
			}
		})
	}
}
