package dareme_test

import (
	"errors"
	"testing"
	"time"

	"dareme/internal/dareme"
)

func TestService_Messaging(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")

	send := func(from, to int64, content, media string) int64 {
		t.Helper()
		id, err := env.svc.SendMessage(from, to, content, media)
		if err != nil {
			t.Fatalf("SendMessage() error = %v", err)
		}
		env.clock.Advance(time.Minute)
		return id
	}

	send(alice, bob, "hi bob", "")
	send(bob, alice, "hi alice", "")
	send(alice, bob, "", "posts/id-9.png")
	send(carol, bob, "hey", "")

	t.Run("needs content or media", func(t *testing.T) {
		if _, err := env.svc.SendMessage(alice, bob, "  ", ""); !errors.Is(err, dareme.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("unknown receiver", func(t *testing.T) {
		if _, err := env.svc.SendMessage(alice, 9999, "hello?", ""); !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("thread is chronological", func(t *testing.T) {
		thread, err := env.svc.GetThread(bob, alice, 0)
		if err != nil {
			t.Fatalf("GetThread() error = %v", err)
		}
		if len(thread) != 3 {
			t.Fatalf("got %d messages, want 3", len(thread))
		}
		if thread[0].Content != "hi bob" || thread[1].Content != "hi alice" {
			t.Errorf("thread order = %q, %q", thread[0].Content, thread[1].Content)
		}
		if !thread[2].MediaPath.Valid || thread[2].MediaPath.String != "posts/id-9.png" {
			t.Errorf("media message MediaPath = %+v", thread[2].MediaPath)
		}
		if thread[0].MediaPath.Valid {
			t.Errorf("text message has MediaPath %+v", thread[0].MediaPath)
		}

		latest, _ := env.svc.GetThread(bob, alice, 2)
		if len(latest) != 2 || latest[0].Content != "hi alice" {
			t.Errorf("GetThread(limit 2) = %d messages starting %q, want latest two", len(latest), latest[0].Content)
		}
	})

	t.Run("conversations newest first with unread counts", func(t *testing.T) {
		convs, err := env.svc.ListConversations(bob)
		if err != nil {
			t.Fatalf("ListConversations() error = %v", err)
		}
		if len(convs) != 2 {
			t.Fatalf("got %d conversations, want 2", len(convs))
		}
		if convs[0].OtherUsername != "carol" || convs[0].UnreadCount != 1 {
			t.Errorf("first conversation = %+v, want carol with 1 unread", convs[0])
		}
		if convs[1].OtherUserID != alice || convs[1].UnreadCount != 2 {
			t.Errorf("second conversation = %+v, want alice with 2 unread", convs[1])
		}
	})

	t.Run("mark read", func(t *testing.T) {
		if n, _ := env.svc.UnreadCount(bob); n != 3 {
			t.Errorf("UnreadCount(bob) = %d, want 3", n)
		}
		n, err := env.svc.MarkRead(bob, alice)
		if err != nil {
			t.Fatalf("MarkRead() error = %v", err)
		}
		if n != 2 {
			t.Errorf("MarkRead() = %d, want 2", n)
		}
		if n, _ := env.svc.MarkRead(bob, alice); n != 0 {
			t.Errorf("second MarkRead() = %d, want 0", n)
		}
		if n, _ := env.svc.UnreadCount(bob); n != 1 {
			t.Errorf("UnreadCount(bob) = %d, want 1", n)
		}
		if n, _ := env.svc.UnreadCount(alice); n != 1 {
			t.Errorf("UnreadCount(alice) = %d, want 1", n)
		}
	})
}
