package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, yaml string) {
	t.Helper()
	viper.Reset()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
}

// chdir is the pre-Go 1.24 equivalent of t.Chdir.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	writeConfig(t, "server:\n  port: \":4000\"\ndatabase:\n  dsn: \"user:pass@tcp(localhost:3306)/expenses?parseTime=true\"\n")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != ":4000" {
		t.Fatalf("port = %q, want :4000", cfg.Server.Port)
	}
	if cfg.Database.DSN != "user:pass@tcp(localhost:3306)/expenses?parseTime=true" {
		t.Fatalf("dsn = %q", cfg.Database.DSN)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	writeConfig(t, "server:\n  port: \":4000\"\ndatabase:\n  dsn: \"from-file\"\n")
	t.Setenv("EXPENSE_DATABASE_DSN", "from-env")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Database.DSN != "from-env" {
		t.Fatalf("dsn = %q, want env override from-env", cfg.Database.DSN)
	}
	// Keys without an override keep their file values.
	if cfg.Server.Port != ":4000" {
		t.Fatalf("port = %q, want :4000", cfg.Server.Port)
	}
}

func TestLoadConfigDefaultPort(t *testing.T) {
	writeConfig(t, "database:\n  dsn: \"dsn\"\n")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != ":3001" {
		t.Fatalf("port = %q, want default :3001", cfg.Server.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when config file is missing")
	}
}
