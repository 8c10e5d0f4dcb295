package app

import (
	"errors"
	"path/filepath"
	"testing"

	"dareme/internal/dareme"
	"dareme/internal/database"
)

func TestDareApp_Backup(t *testing.T) {
	a := newTestApp(t)
	a.login(t, "alice")

	key, err := a.Backup()
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if key != "backups/dareme-20240115T103000Z.db.age" {
		t.Errorf("key = %q", key)
	}
	if !a.media.Has(key) {
		t.Fatalf("backup %s not stored", key)
	}

	t.Run("fetch restores a readable database", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "restored.db")
		if err := a.FetchBackup(key, "any", dest); err != nil {
			t.Fatalf("FetchBackup() error = %v", err)
		}

		restored, err := database.NewSQLiteDatabase(dest)
		if err != nil {
			t.Fatalf("opening restored database: %v", err)
		}
		defer restored.Close()

		user, err := restored.FindUserByUsername("alice")
		if err != nil {
			t.Fatalf("FindUserByUsername() error = %v", err)
		}
		if user == nil {
			t.Error("restored database is missing alice")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "restored.db")
		if err := a.FetchBackup(key, "any", dest); err != nil {
			t.Fatalf("first FetchBackup() error = %v", err)
		}
		if err := a.FetchBackup(key, "any", dest); err == nil {
			t.Error("second FetchBackup() expected error")
		}
	})

	t.Run("only backup keys", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "restored.db")
		if err := a.FetchBackup("posts/id-1.png", "any", dest); !errors.Is(err, dareme.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("missing backup", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "restored.db")
		if err := a.FetchBackup("backups/none.db.age", "any", dest); !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
