package dareme

import (
	"fmt"
	"io"
	"time"
)

// Service holds the domain rules for accounts, content, trends, the social
// graph, messaging, stories, moderation and challenges. It coordinates the
// Database and MediaStore; presentation layers call it and nothing else.
type Service struct {
	database Database
	media    MediaStore
	policy   UploadPolicy
	logger   Logger
	clock    Clock
	idgen    IDGenerator
}

// NewService creates a new Service with the provided dependencies.
func NewService(database Database, media MediaStore, policy UploadPolicy, logger Logger, clock Clock, idgen IDGenerator) *Service {
	return &Service{
		database: database,
		media:    media,
		policy:   policy,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
	}
}

// now returns the current time in UTC. Stored timestamps are compared as
// text, so every timestamp written must share one zone.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}

// UploadMedia validates and stores a media object, returning its key.
func (s *Service) UploadMedia(kind MediaKind, filename string, r io.Reader, size int64) (string, error) {
	if !s.policy.Allows(filename, size) {
		return "", fmt.Errorf("%w: %s is not an allowed upload (%d bytes)", ErrInvalidArgument, filename, size)
	}

	key := MediaKey(kind, s.idgen.New(), filename)
	if err := s.media.Put(key, r, size); err != nil {
		return "", fmt.Errorf("storing media: %w", err)
	}

	s.logger.Debug("media stored", "key", key, "size", size)
	return key, nil
}

// FetchMedia writes the object under key to w.
func (s *Service) FetchMedia(key string, w io.Writer) error {
	if err := s.media.Get(key, w); err != nil {
		return fmt.Errorf("fetching media: %w", err)
	}
	return nil
}
