package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Export.Binary {
		t.Error("expected binary export to be false by default")
	}
	if cfg.Export.Generator != "worldmesh" {
		t.Errorf("expected generator 'worldmesh', got %s", cfg.Export.Generator)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
logging:
  level: debug
  log_file: /tmp/meshtool.log

export:
  binary: true
  generator: custom-tool
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "/tmp/meshtool.log" {
		t.Errorf("expected log file '/tmp/meshtool.log', got %s", cfg.Logging.LogFile)
	}
	if !cfg.Export.Binary {
		t.Error("expected binary export to be true")
	}
	if cfg.Export.Generator != "custom-tool" {
		t.Errorf("expected generator 'custom-tool', got %s", cfg.Export.Generator)
	}
}

func TestLoadFromFile_PartialOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only logging is overridden; export keeps defaults.
	yamlContent := `
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Export.Generator != "worldmesh" {
		t.Errorf("expected default generator, got %s", cfg.Export.Generator)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
