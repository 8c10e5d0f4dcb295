package media

import (
	"context"
	"fmt"

	"dareme/internal/config"
	"dareme/internal/dareme"
)

// NewStoreFromConfig creates a MediaStore implementation based on the media config type.
func NewStoreFromConfig(ctx context.Context, cfg config.MediaConfig) (dareme.MediaStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "s3":
		return NewS3Store(ctx, cfg)
	case "filesystem":
		if cfg.Root == "" {
			return nil, fmt.Errorf("filesystem media store requires root to be set")
		}
		return NewFileSystemStore(cfg.Root)
	default:
		return nil, fmt.Errorf("unknown media type: %s", cfg.Type)
	}
}
