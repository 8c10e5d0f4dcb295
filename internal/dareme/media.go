package dareme

import (
	"io"
	"path"
	"slices"
	"strings"
)

// MediaStore provides an interface for media object storage backends.
// Objects are streamed through io.Reader/io.Writer so large videos never
// have to fit in memory.
type MediaStore interface {
	// Put stores the object under key. size is the number of bytes that
	// will be read from r. Storing an existing key overwrites it.
	Put(key string, r io.Reader, size int64) error

	// Get retrieves the object under key and writes it to w.
	Get(key string, w io.Writer) error

	// Delete removes the object under key. Deleting a missing key is not
	// an error.
	Delete(key string) error

	// ValidateSetup verifies that the store is accessible.
	ValidateSetup() error
}

// MediaKind is the top-level namespace for a media object key.
type MediaKind string

const (
	MediaKindPost      MediaKind = "posts"
	MediaKindStory     MediaKind = "stories"
	MediaKindChallenge MediaKind = "challenges"
	MediaKindMessage   MediaKind = "messages"
	MediaKindBackup    MediaKind = "backups"
)

// Post media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

var imageExtensions = []string{"png", "jpg", "jpeg", "gif"}

// MediaTypeFor classifies a media path by its extension. Anything that is
// not a known image extension is treated as video.
func MediaTypeFor(mediaPath string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(mediaPath), "."))
	if slices.Contains(imageExtensions, ext) {
		return MediaTypeImage
	}
	return MediaTypeVideo
}

// MediaKey builds the storage key for a new object: <kind>/<id><ext>.
func MediaKey(kind MediaKind, id, filename string) string {
	return string(kind) + "/" + id + strings.ToLower(path.Ext(filename))
}

// DefaultMaxUploadSize is 5 MiB.
const DefaultMaxUploadSize int64 = 5 << 20

// UploadPolicy limits what can be uploaded through the service.
type UploadPolicy struct {
	MaxSize    int64
	ImageTypes []string
	VideoTypes []string
}

// DefaultUploadPolicy returns the stock upload limits.
func DefaultUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSize:    DefaultMaxUploadSize,
		ImageTypes: slices.Clone(imageExtensions),
		VideoTypes: []string{"mp4", "mov", "avi"},
	}
}

// Allows reports whether a file with the given name and size may be uploaded.
func (p UploadPolicy) Allows(filename string, size int64) bool {
	if size <= 0 || (p.MaxSize > 0 && size > p.MaxSize) {
		return false
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return slices.Contains(p.ImageTypes, ext) || slices.Contains(p.VideoTypes, ext)
}
