package testutil

import (
	"errors"
	"io"

	"dareme/internal/media"
)

// NewTestMediaStore creates an empty in-memory media store.
func NewTestMediaStore() *media.MemoryStore {
	return media.NewMemoryStore()
}

// ErrMediaUnavailable is returned by every FailingMediaStore operation.
var ErrMediaUnavailable = errors.New("media store unavailable")

// FailingMediaStore wraps a MemoryStore and fails the operations selected
// by its flags.
type FailingMediaStore struct {
	*media.MemoryStore
	FailPut    bool
	FailDelete bool
}

// NewFailingMediaStore creates a FailingMediaStore with no failures enabled.
func NewFailingMediaStore() *FailingMediaStore {
	return &FailingMediaStore{MemoryStore: media.NewMemoryStore()}
}

func (s *FailingMediaStore) Put(key string, r io.Reader, size int64) error {
	if s.FailPut {
		return ErrMediaUnavailable
	}
	return s.MemoryStore.Put(key, r, size)
}

func (s *FailingMediaStore) Delete(key string) error {
	if s.FailDelete {
		return ErrMediaUnavailable
	}
	return s.MemoryStore.Delete(key)
}
