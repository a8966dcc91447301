package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// CONFIG — dashboard settings
// ============================================================================
// Optional config.yaml, overridable per-field from the environment. A
// missing file is not an error: every field has a default, and the dataset
// itself has a synthetic fallback.
// ============================================================================

const (
	defaultDataPath    = "Animal-Shelter-Operations.csv"
	defaultTitle       = "Animal Shelter Operations Analysis"
	defaultIntakeTopN  = 6
	defaultOutcomeTopN = 10
)

// Config holds the dashboard settings.
type Config struct {
	Title         string `yaml:"title"`
	DataPath      string `yaml:"data_path"`
	SyntheticRows int    `yaml:"synthetic_rows"` // fallback dataset size
	IntakeTopN    int    `yaml:"intake_top_n"`   // intake-type chart categories
	OutcomeTopN   int    `yaml:"outcome_top_n"`  // outcome-type chart categories
}

// Load reads config.yaml (or $CONFIG_PATH), applies SHELTERLENS_* env
// overrides, then fills defaults. A missing file yields the defaults; a
// file that exists but fails to parse is an error.
func Load() (Config, error) {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.Title, "SHELTERLENS_TITLE")
	envOverride(&cfg.DataPath, "SHELTERLENS_DATA_PATH")
	envOverrideInt(&cfg.SyntheticRows, "SHELTERLENS_SYNTHETIC_ROWS")
	envOverrideInt(&cfg.IntakeTopN, "SHELTERLENS_INTAKE_TOP_N")
	envOverrideInt(&cfg.OutcomeTopN, "SHELTERLENS_OUTCOME_TOP_N")

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.DataPath == "" {
		cfg.DataPath = defaultDataPath
	}
	if cfg.IntakeTopN <= 0 {
		cfg.IntakeTopN = defaultIntakeTopN
	}
	if cfg.OutcomeTopN <= 0 {
		cfg.OutcomeTopN = defaultOutcomeTopN
	}
	// SyntheticRows <= 0 means "library default"; dataset.Load handles it.
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: not an integer", key, v)
		return
	}
	*dst = n
}
