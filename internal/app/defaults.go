package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"dareme/internal/config"
)

// LoadEnv reads KEY=value pairs from the given .env files (default ".env")
// into the process environment. Variables already set are not overridden
// and missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - DAREME_CONFIG_PATH: config file location (default: ~/.config/dareme.toml)
//   - DAREME_HOME: base directory for dareme data (default: ~/.local/share/dareme)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// ApplyEnvOverrides adjusts cfg from the environment after it is read.
// DAREME_DB_PATH points the sqlite database at an explicit file.
func ApplyEnvOverrides(cfg *config.Config) {
	if path := os.Getenv("DAREME_DB_PATH"); path != "" {
		cfg.Database.Type = "sqlite"
		cfg.Database.Path = path
	}
}

func getConfigPath() (string, error) {
	if path := os.Getenv("DAREME_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dareme.toml"), nil
}

func getBaseDir() (string, error) {
	if path := os.Getenv("DAREME_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "dareme"), nil
}
