package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "restamp.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if *cfg != *def {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
format: "%Y%m%d"
mode: modified
logger:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Format != "%Y%m%d" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.Mode != "modified" {
		t.Errorf("Mode = %q", cfg.Mode)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "json" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "mode: exif\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Mode != "exif" {
		t.Errorf("Mode = %q, want exif", cfg.Mode)
	}
	if cfg.Format != Default().Format {
		t.Errorf("Format = %q, want default", cfg.Format)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want info", cfg.Logger.Level)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := writeConfig(t, "mode: newest\n")

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unknown mode")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "mode: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Load should reject malformed YAML")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restamp.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
