package app

import (
	"os"
	"path/filepath"
	"testing"

	"dareme/internal/config"
)

func TestGetDefaults(t *testing.T) {
	t.Run("uses env vars when set", func(t *testing.T) {
		t.Setenv("DAREME_CONFIG_PATH", "/custom/config.toml")
		t.Setenv("DAREME_HOME", "/custom/dareme")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if defaults["config_path"] != "/custom/config.toml" {
			t.Errorf("config_path = %q, want %q", defaults["config_path"], "/custom/config.toml")
		}
		if defaults["base_dir"] != "/custom/dareme" {
			t.Errorf("base_dir = %q, want %q", defaults["base_dir"], "/custom/dareme")
		}
		if defaults["log_dir"] != "/custom/dareme/log" {
			t.Errorf("log_dir = %q, want %q", defaults["log_dir"], "/custom/dareme/log")
		}
	})

	t.Run("falls back to home dir defaults", func(t *testing.T) {
		t.Setenv("DAREME_CONFIG_PATH", "")
		t.Setenv("DAREME_HOME", "")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		homeDir, _ := os.UserHomeDir()

		wantConfig := filepath.Join(homeDir, ".config", "dareme.toml")
		if defaults["config_path"] != wantConfig {
			t.Errorf("config_path = %q, want %q", defaults["config_path"], wantConfig)
		}

		wantBase := filepath.Join(homeDir, ".local", "share", "dareme")
		if defaults["base_dir"] != wantBase {
			t.Errorf("base_dir = %q, want %q", defaults["base_dir"], wantBase)
		}
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("DAREME_TEST_LOADENV=from-file\n"), 0600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("DAREME_TEST_LOADENV", "")
		os.Unsetenv("DAREME_TEST_LOADENV")

		if err := LoadEnv(path); err != nil {
			t.Fatalf("LoadEnv() error = %v", err)
		}
		if got := os.Getenv("DAREME_TEST_LOADENV"); got != "from-file" {
			t.Errorf("DAREME_TEST_LOADENV = %q, want %q", got, "from-file")
		}
	})

	t.Run("does not override existing values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("DAREME_TEST_LOADENV=from-file\n"), 0600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("DAREME_TEST_LOADENV", "from-env")

		if err := LoadEnv(path); err != nil {
			t.Fatalf("LoadEnv() error = %v", err)
		}
		if got := os.Getenv("DAREME_TEST_LOADENV"); got != "from-env" {
			t.Errorf("DAREME_TEST_LOADENV = %q, want %q", got, "from-env")
		}
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
			t.Errorf("LoadEnv() error = %v, want nil", err)
		}
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := config.NewConfig("/base")
	cfg.Database.Type = "memory"

	t.Setenv("DAREME_DB_PATH", "/tmp/other.db")
	ApplyEnvOverrides(cfg)

	if cfg.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want sqlite", cfg.Database.Type)
	}
	if cfg.Database.Path != "/tmp/other.db" {
		t.Errorf("Database.Path = %q, want /tmp/other.db", cfg.Database.Path)
	}
}
