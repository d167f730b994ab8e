package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want %q", cfg.Output.Color, "auto")
	}
	if cfg.Output.Verbosity != 0 {
		t.Errorf("Output.Verbosity = %d, want 0", cfg.Output.Verbosity)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "[output]\ncolor = \"Always\"\nverbosity = 2\n\n[logging]\nlevel = \"DEBUG\"\n")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !exists {
		t.Error("exists = false, want true")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Output.Color != "always" {
		t.Errorf("Output.Color = %q, want normalized %q", cfg.Output.Color, "always")
	}
	if cfg.Output.Verbosity != 2 {
		t.Errorf("Output.Verbosity = %d, want 2", cfg.Output.Verbosity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want normalized %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[output]\nverbosity = 1\n")

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want default %q", cfg.Output.Color, "auto")
	}
	if cfg.Output.Verbosity != 1 {
		t.Errorf("Output.Verbosity = %d, want 1", cfg.Output.Verbosity)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"bad color", "[output]\ncolor = \"sometimes\"\n", "output.color"},
		{"negative verbosity", "[output]\nverbosity = -1\n", "output.verbosity"},
		{"bad level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"malformed toml", "[output\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want failure for missing explicit path")
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample() error = %v", err)
	}
	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("Load(sample) error = %v", err)
	}
	if !exists {
		t.Error("sample config not detected")
	}
	if *cfg != Default() {
		t.Errorf("sample config = %+v, want defaults %+v", *cfg, Default())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/x/y", filepath.Join(home, "x", "y")},
		{"absolute untouched", "/etc/presetid.toml", "/etc/presetid.toml"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
