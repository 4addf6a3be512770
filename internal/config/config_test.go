package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopN != 5 {
		t.Errorf("top_n: got %d, want 5", cfg.TopN)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level: got %q, want info", cfg.LogLevel)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server addr: got %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Output.ContactsCSV != "sahal_contacts.csv" {
		t.Errorf("contacts path: got %q", cfg.Output.ContactsCSV)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "top_n: 10\nlog_level: debug\noutput:\n  contacts_csv: out.csv\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopN != 10 {
		t.Errorf("top_n: got %d, want 10", cfg.TopN)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level: got %q, want debug", cfg.LogLevel)
	}
	if cfg.Output.ContactsCSV != "out.csv" {
		t.Errorf("contacts path: got %q, want out.csv", cfg.Output.ContactsCSV)
	}
	// Unset fields keep their defaults.
	if cfg.Output.RecordsCSV != "sahal_records.csv" {
		t.Errorf("records path: got %q", cfg.Output.RecordsCSV)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("top_n: 3\n"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("SAHAL_TOP_N", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopN != 7 {
		t.Errorf("env should win over file: got %d, want 7", cfg.TopN)
	}
}

func TestEnvOverridesNestedSections(t *testing.T) {
	t.Setenv("SAHAL_OUTPUT_CONTACTS_CSV", "from-env.csv")
	t.Setenv("SAHAL_SERVER_ADDR", ":9999")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.ContactsCSV != "from-env.csv" {
		t.Errorf("output contacts path: got %q, want from-env.csv", cfg.Output.ContactsCSV)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("server addr: got %q, want :9999", cfg.Server.Addr)
	}
	// Untouched siblings keep their defaults.
	if cfg.Output.RecordsCSV != "sahal_records.csv" {
		t.Errorf("records path: got %q", cfg.Output.RecordsCSV)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsBadTopN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("top_n: 0\n"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for top_n below 1")
	}
}
