package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"dareme/internal/dareme"
)

// FileSystemStore stores media objects as files below a root directory,
// one subdirectory per media kind:
//
//	<root>/
//	  posts/<uuid>.jpg
//	  stories/<uuid>.mp4
//	  challenges/...
//	  messages/...
//	  backups/...
type FileSystemStore struct {
	root string
}

var storeKinds = []dareme.MediaKind{
	dareme.MediaKindPost,
	dareme.MediaKindStory,
	dareme.MediaKindChallenge,
	dareme.MediaKindMessage,
	dareme.MediaKindBackup,
}

// NewFileSystemStore creates a store rooted at root, creating the kind
// directories if needed.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	for _, kind := range storeKinds {
		if err := os.MkdirAll(filepath.Join(root, string(kind)), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", kind, err)
		}
	}
	return &FileSystemStore{root: root}, nil
}

func (s *FileSystemStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Put writes the object atomically (temp file + rename) so readers never
// observe a partial upload.
func (s *FileSystemStore) Put(key string, r io.Reader, size int64) error {
	if err := checkKey(key); err != nil {
		return err
	}

	destPath := s.path(key)
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmpFile, r)
	if err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if written != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, written)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

func (s *FileSystemStore) Get(key string, w io.Writer) error {
	if err := checkKey(key); err != nil {
		return err
	}

	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(key)
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return nil
}

func (s *FileSystemStore) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// ValidateSetup verifies that the root and kind directories are accessible.
func (s *FileSystemStore) ValidateSetup() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("media root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media root is not a directory: %s", s.root)
	}

	for _, kind := range storeKinds {
		dir := filepath.Join(s.root, string(kind))
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("media directory not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("media path is not a directory: %s", dir)
		}
	}
	return nil
}

// Compile-time check that FileSystemStore implements dareme.MediaStore interface
var _ dareme.MediaStore = (*FileSystemStore)(nil)
