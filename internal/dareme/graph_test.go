package dareme_test

import (
	"errors"
	"testing"

	"dareme/internal/dareme"
)

func TestService_Follow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	if _, err := env.svc.Follow(alice, bob); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	if _, err := env.svc.Follow(alice, bob); !errors.Is(err, dareme.ErrDuplicate) {
		t.Errorf("second Follow() error = %v, want ErrDuplicate", err)
	}
	if _, err := env.svc.Follow(alice, alice); !errors.Is(err, dareme.ErrInvalidArgument) {
		t.Errorf("self Follow() error = %v, want ErrInvalidArgument", err)
	}
	if _, err := env.svc.Follow(9999, bob); !errors.Is(err, dareme.ErrNotFound) {
		t.Errorf("Follow(missing) error = %v, want ErrNotFound", err)
	}

	if ok, _ := env.svc.IsFollowing(alice, bob); !ok {
		t.Error("IsFollowing(alice, bob) = false")
	}
	if ok, _ := env.svc.IsFollowing(bob, alice); ok {
		t.Error("IsFollowing(bob, alice) = true, edges are directed")
	}

	followers, _ := env.svc.Followers(alice)
	following, _ := env.svc.Following(bob)
	if len(followers) != 1 || followers[0].ID != bob {
		t.Errorf("Followers(alice) = %v", followers)
	}
	if len(following) != 1 || following[0].ID != alice {
		t.Errorf("Following(bob) = %v", following)
	}

	if err := env.svc.Unfollow(alice, bob); err != nil {
		t.Fatalf("Unfollow() error = %v", err)
	}
	if err := env.svc.Unfollow(alice, bob); !errors.Is(err, dareme.ErrNotFound) {
		t.Errorf("second Unfollow() error = %v, want ErrNotFound", err)
	}
}

func TestService_GetAnalytics(t *testing.T) {
	t.Run("user without posts", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.register(t, "alice")

		got, err := env.svc.GetAnalytics(alice)
		if err != nil {
			t.Fatalf("GetAnalytics() error = %v", err)
		}
		if *got != (dareme.Analytics{}) {
			t.Errorf("GetAnalytics() = %+v, want zeroes", got)
		}
	})

	t.Run("aggregates posts and followers", func(t *testing.T) {
		env := newTestEnv(t)
		alice := env.register(t, "alice")
		bob := env.register(t, "bob")
		carol := env.register(t, "carol")
		env.svc.Follow(alice, bob)
		env.svc.Follow(alice, carol)

		p1 := env.post(t, alice, "")
		env.post(t, alice, "")
		env.svc.RecordView(p1)
		env.svc.RecordView(p1)
		env.svc.Vote(p1, bob, true) // level 10, other post stays at 1

		got, err := env.svc.GetAnalytics(alice)
		if err != nil {
			t.Fatalf("GetAnalytics() error = %v", err)
		}
		want := dareme.Analytics{PostCount: 2, TotalViews: 2, AvgTrend: 5.5, FollowerCount: 2}
		if *got != want {
			t.Errorf("GetAnalytics() = %+v, want %+v", *got, want)
		}
	})
}
