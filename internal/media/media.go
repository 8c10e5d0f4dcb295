// Package media implements dareme.MediaStore backends.
package media

import (
	"fmt"
	"path"
	"strings"

	"dareme/internal/dareme"
)

// checkKey rejects keys that could escape the store's namespace.
func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || path.Clean(key) != key || strings.HasPrefix(key, "../") || key == ".." {
		return fmt.Errorf("%w: invalid media key %q", dareme.ErrInvalidArgument, key)
	}
	return nil
}

func notFound(key string) error {
	return fmt.Errorf("%w: media %s", dareme.ErrNotFound, key)
}
