package dareme_test

import (
	"bytes"
	"errors"
	"testing"

	"dareme/internal/dareme"
	"dareme/internal/database/sqlc"
	"dareme/internal/testutil"
)

// testEnv bundles a Service with the fakes behind it.
type testEnv struct {
	svc    *dareme.Service
	media  *testutil.FailingMediaStore
	clock  *testutil.StubClock
	logger *testutil.RecordingLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		media:  testutil.NewFailingMediaStore(),
		clock:  testutil.FixedClock(),
		logger: &testutil.RecordingLogger{},
	}
	env.svc = dareme.NewService(testutil.NewTestDatabase(t), env.media, dareme.DefaultUploadPolicy(), env.logger, env.clock, testutil.NewStubIDGenerator())
	return env
}

// register creates a user with a throwaway password.
func (e *testEnv) register(t *testing.T, username string) int64 {
	t.Helper()
	id, err := e.svc.Register(username, username+"@example.com", "pw-"+username, "")
	if err != nil {
		t.Fatalf("Register(%s) error = %v", username, err)
	}
	return id
}

// post uploads a small image and creates a post for userID.
func (e *testEnv) post(t *testing.T, userID int64, caption string) int64 {
	t.Helper()
	key, err := e.svc.UploadMedia(dareme.MediaKindPost, "photo.png", bytes.NewReader([]byte("png")), 3)
	if err != nil {
		t.Fatalf("UploadMedia() error = %v", err)
	}
	id, err := e.svc.CreatePost(userID, key, caption)
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	return id
}

func TestService_UploadMedia(t *testing.T) {
	t.Run("stores object under kind prefix", func(t *testing.T) {
		env := newTestEnv(t)

		key, err := env.svc.UploadMedia(dareme.MediaKindStory, "Clip.MP4", bytes.NewReader([]byte("video")), 5)
		if err != nil {
			t.Fatalf("UploadMedia() error = %v", err)
		}
		if key != "stories/id-1.mp4" {
			t.Errorf("key = %q, want %q", key, "stories/id-1.mp4")
		}

		var buf bytes.Buffer
		if err := env.svc.FetchMedia(key, &buf); err != nil {
			t.Fatalf("FetchMedia() error = %v", err)
		}
		if buf.String() != "video" {
			t.Errorf("FetchMedia() = %q, want %q", buf.String(), "video")
		}
	})

	t.Run("rejects disallowed uploads", func(t *testing.T) {
		env := newTestEnv(t)

		cases := []struct {
			name     string
			filename string
			size     int64
		}{
			{"unknown extension", "notes.txt", 10},
			{"no extension", "README", 10},
			{"too large", "big.png", dareme.DefaultMaxUploadSize + 1},
			{"empty", "empty.png", 0},
		}
		for _, tc := range cases {
			_, err := env.svc.UploadMedia(dareme.MediaKindPost, tc.filename, bytes.NewReader(nil), tc.size)
			if !errors.Is(err, dareme.ErrInvalidArgument) {
				t.Errorf("%s: error = %v, want ErrInvalidArgument", tc.name, err)
			}
		}
		if env.media.Len() != 0 {
			t.Errorf("store has %d objects, want 0", env.media.Len())
		}
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		env := newTestEnv(t)
		env.media.FailPut = true

		_, err := env.svc.UploadMedia(dareme.MediaKindPost, "a.png", bytes.NewReader([]byte("x")), 1)
		if !errors.Is(err, testutil.ErrMediaUnavailable) {
			t.Errorf("error = %v, want ErrMediaUnavailable", err)
		}
	})
}

func postIDs(posts []*sqlc.Post) []int64 {
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
