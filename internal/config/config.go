// Package config loads application configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the surrounding application needs to wire the
// pipeline, the draft store, and the suggestion client.
type Config struct {
	// InputPath is the delimited export file ingested by report/watch.
	InputPath string `yaml:"input_path"`

	// DBPath is the SQLite file backing the draft store.
	DBPath string `yaml:"db_path"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	LLMModel        string `yaml:"llm_model"`
	LLMBatchSize    int    `yaml:"llm_batch_size"`
	LogCalls        bool   `yaml:"log_llm_calls"`

	// ClauseCatalog is the fixed set of recognized compliance standards the
	// suggestion service chooses from.
	ClauseCatalog []string `yaml:"clause_catalog"`
}

// Load reads config.yaml (or $DESKOPS_CONFIG) if present, then applies
// environment overrides and defaults. A missing config file is not an error.
func Load() (Config, error) {
	var cfg Config

	path := "config.yaml"
	if envPath := os.Getenv("DESKOPS_CONFIG"); envPath != "" {
		path = envPath
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	envOverride(&cfg.InputPath, "DESKOPS_INPUT")
	envOverride(&cfg.DBPath, "DESKOPS_DB")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.LLMModel, "DESKOPS_LLM_MODEL")
	envOverrideInt(&cfg.LLMBatchSize, "DESKOPS_LLM_BATCH_SIZE")
	envOverrideBool(&cfg.LogCalls, "DESKOPS_LOG_LLM_CALLS")

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".deskops", "deskops.db")
	}

	if len(cfg.ClauseCatalog) == 0 {
		cfg.ClauseCatalog = DefaultClauseCatalog
	}

	return cfg, nil
}

// DefaultClauseCatalog is used when the config file does not list standards.
var DefaultClauseCatalog = []string{
	"ISO 27001 A.5 Information security policies",
	"ISO 27001 A.8 Asset management",
	"ISO 27001 A.9 Access control",
	"ISO 27001 A.12 Operations security",
	"ISO 27001 A.16 Incident management",
	"ISO 27001 A.17 Business continuity",
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func envOverrideBool(target *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}
