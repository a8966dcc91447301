package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if cfg.DataPath != defaultDataPath {
		t.Fatalf("unexpected data path default: %q", cfg.DataPath)
	}
	if cfg.Title != defaultTitle {
		t.Fatalf("unexpected title default: %q", cfg.Title)
	}
	if cfg.IntakeTopN != 6 || cfg.OutcomeTopN != 10 {
		t.Fatalf("unexpected top-N defaults: %d/%d", cfg.IntakeTopN, cfg.OutcomeTopN)
	}
	if cfg.SyntheticRows != 0 {
		t.Fatalf("synthetic rows must default to 0 (library default), got %d", cfg.SyntheticRows)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
title: "Shelter Ops"
data_path: "/data/shelter.csv"
synthetic_rows: 250
intake_top_n: 4
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("SHELTERLENS_DATA_PATH", "/override/shelter.csv")
	t.Setenv("SHELTERLENS_OUTCOME_TOP_N", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Shelter Ops" {
		t.Fatalf("yaml title not applied: %q", cfg.Title)
	}
	if cfg.DataPath != "/override/shelter.csv" {
		t.Fatalf("env must override yaml: %q", cfg.DataPath)
	}
	if cfg.SyntheticRows != 250 || cfg.IntakeTopN != 4 || cfg.OutcomeTopN != 3 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestLoadBadYAMLIsAnError(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("title: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", cfgPath)

	if _, err := Load(); err == nil {
		t.Fatal("a present-but-broken config file must fail loudly")
	}
}

func TestLoadIgnoresNonIntegerEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SHELTERLENS_INTAKE_TOP_N", "six")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntakeTopN != defaultIntakeTopN {
		t.Fatalf("bad integer env must be ignored, got %d", cfg.IntakeTopN)
	}
}
