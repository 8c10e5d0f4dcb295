package dareme_test

import (
	"errors"
	"testing"
	"time"

	"dareme/internal/dareme"
)

func TestService_Stories(t *testing.T) {
	t.Run("visible until expiry", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.register(t, "alice")
		bob := env.register(t, "bob")

		storyID, err := env.svc.CreateStory(alice, "stories/a.png", "today")
		if err != nil {
			t.Fatalf("CreateStory() error = %v", err)
		}
		env.clock.Advance(time.Hour)
		if _, err := env.svc.CreateStory(bob, "stories/b.mp4", ""); err != nil {
			t.Fatalf("CreateStory() error = %v", err)
		}

		all, _ := env.svc.ListActiveStories(0)
		mine, _ := env.svc.ListActiveStories(alice)
		if len(all) != 2 || len(mine) != 1 || mine[0].ID != storyID {
			t.Errorf("active: all = %d, alice = %d; want 2, 1", len(all), len(mine))
		}

		story := mine[0]
		if !story.ExpiresAt.Equal(story.CreatedAt.Add(dareme.StoryLifetime)) {
			t.Errorf("ExpiresAt = %v, want CreatedAt + %v", story.ExpiresAt, dareme.StoryLifetime)
		}

		env.clock.Advance(23 * time.Hour)
		all, _ = env.svc.ListActiveStories(0)
		if len(all) != 1 {
			t.Errorf("after alice's expiry got %d stories, want 1", len(all))
		}
		if err := env.svc.ViewStory(storyID, bob); !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("ViewStory(expired) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("views are unique per viewer", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.register(t, "alice")
		bob := env.register(t, "bob")
		carol := env.register(t, "carol")
		storyID, _ := env.svc.CreateStory(alice, "stories/a.png", "")

		for _, viewer := range []int64{bob, bob, carol} {
			if err := env.svc.ViewStory(storyID, viewer); err != nil {
				t.Fatalf("ViewStory() error = %v", err)
			}
			env.clock.Advance(time.Minute)
		}

		viewers, err := env.svc.StoryViewers(storyID)
		if err != nil {
			t.Fatalf("StoryViewers() error = %v", err)
		}
		if len(viewers) != 2 || viewers[0].Username != "bob" || viewers[1].Username != "carol" {
			t.Errorf("StoryViewers() = %+v, want bob then carol", viewers)
		}
	})

	t.Run("requires media", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.register(t, "alice")
		if _, err := env.svc.CreateStory(alice, "", ""); !errors.Is(err, dareme.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("missing story", func(t *testing.T) {
		env := newTestEnv(t)
		bob := env.register(t, "bob")
		if err := env.svc.ViewStory(9999, bob); !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
