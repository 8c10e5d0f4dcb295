package database

import (
	"fmt"
	"os"
	"path/filepath"

	"dareme/internal/config"
	"dareme/internal/dareme"
)

// DatabaseFileName is the SQLite file created inside the data directory.
const DatabaseFileName = "dareme.db"

// NewDatabaseFromConfig creates a Database implementation based on the database config type.
// For sqlite, an explicit path wins over data_dir.
func NewDatabaseFromConfig(cfg config.DatabaseConfig) (dareme.Database, error) {
	switch cfg.Type {
	case "sqlite":
		dbPath := cfg.Path
		if dbPath == "" {
			if cfg.DataDir == "" {
				return nil, fmt.Errorf("data_dir or path required for sqlite database")
			}
			dbPath = filepath.Join(cfg.DataDir, DatabaseFileName)
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		return NewSQLiteDatabase(dbPath)
	case "memory":
		return NewSQLiteDatabase(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
