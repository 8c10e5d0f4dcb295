package dareme_test

import (
	"errors"
	"testing"
	"time"

	"dareme/internal/dareme"
)

func TestService_Challenges(t *testing.T) {
	env := newTestEnv(t)
	host := env.register(t, "host")
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	challengeID, err := env.svc.CreateChallenge(host, "Backflip", "land it", 100, 7)
	if err != nil {
		t.Fatalf("CreateChallenge() error = %v", err)
	}

	t.Run("validates input", func(t *testing.T) {
		cases := []struct {
			title  string
			reward int64
			days   int
		}{
			{"", 10, 7},
			{"ok", 10, 0},
			{"ok", -1, 7},
		}
		for _, c := range cases {
			if _, err := env.svc.CreateChallenge(host, c.title, "", c.reward, c.days); !errors.Is(err, dareme.ErrInvalidArgument) {
				t.Errorf("CreateChallenge(%q, %d, %d) error = %v, want ErrInvalidArgument", c.title, c.reward, c.days, err)
			}
		}
	})

	t.Run("new challenge is active with end date", func(t *testing.T) {
		ch, err := env.svc.GetChallenge(challengeID)
		if err != nil {
			t.Fatalf("GetChallenge() error = %v", err)
		}
		if ch.Status != dareme.ChallengeActive {
			t.Errorf("Status = %q, want active", ch.Status)
		}
		if got := ch.EndsAt.Sub(ch.CreatedAt); got != 7*24*time.Hour {
			t.Errorf("duration = %v, want 7 days", got)
		}
	})

	var aliceSub, bobSub int64
	t.Run("submissions and votes", func(t *testing.T) {
		var err error
		if aliceSub, err = env.svc.Submit(challengeID, alice, "challenges/a.mp4", "mine"); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if bobSub, err = env.svc.Submit(challengeID, bob, "challenges/b.mp4", ""); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		sub, err := env.svc.VoteSubmission(bobSub, alice)
		if err != nil {
			t.Fatalf("VoteSubmission() error = %v", err)
		}
		if sub.VoteCount != 1 {
			t.Errorf("VoteCount = %d, want 1", sub.VoteCount)
		}
		if _, err := env.svc.VoteSubmission(bobSub, alice); !errors.Is(err, dareme.ErrDuplicate) {
			t.Errorf("second VoteSubmission() error = %v, want ErrDuplicate", err)
		}
		if _, err := env.svc.VoteSubmission(9999, alice); !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("VoteSubmission(missing) error = %v, want ErrNotFound", err)
		}

		subs, _ := env.svc.ListSubmissions(challengeID)
		if len(subs) != 2 || subs[0].ID != bobSub || subs[1].ID != aliceSub {
			t.Errorf("ListSubmissions() order wrong: %+v", subs)
		}
		if subs[0].VoteCount != 1 {
			t.Errorf("VoteCount after duplicate = %d, want 1", subs[0].VoteCount)
		}
	})

	t.Run("end date alone does not close", func(t *testing.T) {
		env.clock.Advance(8 * 24 * time.Hour)
		if _, err := env.svc.Submit(challengeID, host, "challenges/late.mp4", ""); err != nil {
			t.Errorf("Submit() after end date error = %v", err)
		}
	})

	t.Run("closing", func(t *testing.T) {
		if err := env.svc.CloseChallenge(challengeID); err != nil {
			t.Fatalf("CloseChallenge() error = %v", err)
		}
		if err := env.svc.CloseChallenge(challengeID); !errors.Is(err, dareme.ErrInvalidState) {
			t.Errorf("second CloseChallenge() error = %v, want ErrInvalidState", err)
		}
		if _, err := env.svc.Submit(challengeID, alice, "challenges/c.mp4", ""); !errors.Is(err, dareme.ErrInvalidState) {
			t.Errorf("Submit() to closed error = %v, want ErrInvalidState", err)
		}
		if err := env.svc.CloseChallenge(9999); !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("CloseChallenge(missing) error = %v, want ErrNotFound", err)
		}

		active, _ := env.svc.ListChallenges(dareme.ChallengeActive)
		closed, _ := env.svc.ListChallenges(dareme.ChallengeClosed)
		if len(active) != 0 || len(closed) != 1 {
			t.Errorf("active = %d, closed = %d; want 0, 1", len(active), len(closed))
		}
	})
}
