package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dareme/internal/dareme"
)

// backupKey names an encrypted snapshot taken at the app clock's time.
func (a *DareApp) backupKey() string {
	return string(dareme.MediaKindBackup) + "/dareme-" + a.clock.Now().UTC().Format("20060102T150405Z") + ".db.age"
}

// SetupBackupKeys generates the backup key pair, sealing the private key
// with passphrase.
func (a *DareApp) SetupBackupKeys(passphrase string) error {
	if err := a.encryptor.Setup(passphrase); err != nil {
		return fmt.Errorf("setting up backup keys: %w", err)
	}
	a.logger.Info("backup keys created")
	return nil
}

// Backup snapshots the database, encrypts the snapshot and stores it in the
// media store under backups/. It returns the object key.
func (a *DareApp) Backup() (string, error) {
	if !a.encryptor.IsConfigured() {
		return "", fmt.Errorf("backup keys not configured (run 'dareme db keygen')")
	}

	snapshot, err := os.CreateTemp("", "dareme-snapshot-*.db")
	if err != nil {
		return "", fmt.Errorf("creating temp file for snapshot: %w", err)
	}
	snapshotPath := snapshot.Name()
	snapshot.Close()
	// VACUUM INTO refuses to overwrite an existing file.
	os.Remove(snapshotPath)
	defer os.Remove(snapshotPath)

	if err := a.db.BackupTo(snapshotPath); err != nil {
		return "", err
	}

	sealed, err := os.CreateTemp("", "dareme-snapshot-*.age")
	if err != nil {
		return "", fmt.Errorf("creating temp file for encrypted snapshot: %w", err)
	}
	defer os.Remove(sealed.Name())
	defer sealed.Close()

	plain, err := os.Open(snapshotPath)
	if err != nil {
		return "", fmt.Errorf("opening snapshot: %w", err)
	}
	defer plain.Close()

	if err := a.encryptor.Encrypt(plain, sealed); err != nil {
		return "", fmt.Errorf("encrypting snapshot: %w", err)
	}

	size, err := sealed.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", fmt.Errorf("sizing encrypted snapshot: %w", err)
	}
	if _, err := sealed.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding encrypted snapshot: %w", err)
	}

	key := a.backupKey()
	if err := a.media.Put(key, sealed, size); err != nil {
		return "", fmt.Errorf("uploading backup: %w", err)
	}

	a.logger.Info("backup stored", "key", key, "size", size)
	return key, nil
}

// FetchBackup downloads the backup under key, decrypts it with the private
// key unlocked by passphrase and writes the database file to destPath.
// destPath must not exist.
func (a *DareApp) FetchBackup(key, passphrase, destPath string) error {
	if !strings.HasPrefix(key, string(dareme.MediaKindBackup)+"/") {
		return fmt.Errorf("%w: %s is not a backup key", dareme.ErrInvalidArgument, key)
	}

	dc, err := a.encryptor.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking backup key: %w", err)
	}

	sealed, err := os.CreateTemp("", "dareme-fetch-*.age")
	if err != nil {
		return fmt.Errorf("creating temp file for download: %w", err)
	}
	defer os.Remove(sealed.Name())
	defer sealed.Close()

	if err := a.media.Get(key, sealed); err != nil {
		return fmt.Errorf("downloading backup: %w", err)
	}
	if _, err := sealed.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding download: %w", err)
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	if err := dc.Decrypt(sealed, out); err != nil {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("decrypting backup: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", destPath, err)
	}

	a.logger.Info("backup fetched", "key", key, "dest", destPath)
	return nil
}
