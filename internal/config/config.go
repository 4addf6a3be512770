// Package config loads application settings from an optional YAML file
// with SAHAL_* environment variable overrides on top.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all tunable settings for the CLI and API.
type Config struct {
	// TopN bounds each ranked view in the summary (top senders, most
	// active, ...).
	TopN int `yaml:"top_n" koanf:"SAHAL_TOP_N"`

	// IncludeRaw controls whether exports carry the original block text.
	IncludeRaw bool `yaml:"include_raw" koanf:"SAHAL_INCLUDE_RAW"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" koanf:"SAHAL_LOG_LEVEL"`

	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// OutputConfig holds default export paths for the analyze command.
type OutputConfig struct {
	ContactsCSV  string `yaml:"contacts_csv" koanf:"SAHAL_OUTPUT_CONTACTS_CSV"`
	RecordsCSV   string `yaml:"records_csv" koanf:"SAHAL_OUTPUT_RECORDS_CSV"`
	ReportJSON   string `yaml:"report_json" koanf:"SAHAL_OUTPUT_REPORT_JSON"`
	UnmatchedTXT string `yaml:"unmatched_txt" koanf:"SAHAL_OUTPUT_UNMATCHED_TXT"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr" koanf:"SAHAL_SERVER_ADDR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TopN:     5,
		LogLevel: "info",
		Output: OutputConfig{
			ContactsCSV:  "sahal_contacts.csv",
			RecordsCSV:   "sahal_records.csv",
			ReportJSON:   "sahal_report.json",
			UnmatchedTXT: "sahal_unmatched.txt",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// at path (if non-empty), then SAHAL_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.TopN < 1 {
		return cfg, fmt.Errorf("top_n must be at least 1, got %d", cfg.TopN)
	}
	return cfg, nil
}

// applyEnv overlays SAHAL_* environment variables onto cfg. The koanf
// tags carry full variable names, so each section is decoded against the
// flat env map individually; flat decoding does not descend into untagged
// struct fields.
func applyEnv(cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider("SAHAL_", ".", nil), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	conf := koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}
	for _, section := range []interface{}{cfg, &cfg.Output, &cfg.Server} {
		if err := k.UnmarshalWithConf("", section, conf); err != nil {
			return fmt.Errorf("applying environment config: %w", err)
		}
	}
	return nil
}
