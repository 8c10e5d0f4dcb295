package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"dareme/internal/dareme"
	"dareme/internal/database/sqlc"
)

var baseTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

// newTestDB creates a new in-memory database with schema applied.
func newTestDB(t *testing.T) *SQLiteDatabase {
	t.Helper()

	db, err := NewSQLiteDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	if _, err := db.db.Exec(Schema); err != nil {
		db.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createUser(t *testing.T, db *SQLiteDatabase, username string) *sqlc.User {
	t.Helper()
	user, err := db.CreateUser(sqlc.InsertUserParams{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: sql.NullString{String: "hash", Valid: true},
		CreatedAt:    baseTime,
	})
	if err != nil {
		t.Fatalf("CreateUser(%s) error = %v", username, err)
	}
	return user
}

func createPost(t *testing.T, db *SQLiteDatabase, userID int64) *sqlc.Post {
	t.Helper()
	post, err := db.CreatePost(sqlc.InsertPostParams{
		UserID:     userID,
		MediaPath:  "posts/p.png",
		MediaType:  dareme.MediaTypeImage,
		TrendLevel: dareme.DefaultTrendLevel,
		CreatedAt:  baseTime,
	})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	return post
}

func TestSQLiteDatabase_Users(t *testing.T) {
	t.Run("returns nil when user not found", func(t *testing.T) {
		db := newTestDB(t)

		user, err := db.FindUserByUsername("nobody")
		if err != nil {
			t.Fatalf("FindUserByUsername() error = %v", err)
		}
		if user != nil {
			t.Errorf("FindUserByUsername() = %v, want nil", user)
		}
	})

	t.Run("creates and finds user", func(t *testing.T) {
		db := newTestDB(t)
		created := createUser(t, db, "alice")

		found, err := db.FindUserByID(created.ID)
		if err != nil {
			t.Fatalf("FindUserByID() error = %v", err)
		}
		if found == nil {
			t.Fatal("FindUserByID() returned nil, want user")
		}
		if found.Username != "alice" {
			t.Errorf("Username = %q, want alice", found.Username)
		}
		if !found.CreatedAt.Equal(baseTime) {
			t.Errorf("CreatedAt = %v, want %v", found.CreatedAt, baseTime)
		}
	})

	t.Run("duplicate username maps to ErrDuplicate", func(t *testing.T) {
		db := newTestDB(t)
		createUser(t, db, "alice")

		_, err := db.CreateUser(sqlc.InsertUserParams{
			Username:  "alice",
			Email:     "other@example.com",
			CreatedAt: baseTime,
		})
		if !errors.Is(err, dareme.ErrDuplicate) {
			t.Errorf("CreateUser() error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("privacy update on missing user is ErrNotFound", func(t *testing.T) {
		db := newTestDB(t)

		err := db.UpdateUserPrivacy(42, true)
		if !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("UpdateUserPrivacy() error = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteDatabase_DeletePost(t *testing.T) {
	t.Run("removes comments votes and saves", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")
		post := createPost(t, db, alice.ID)

		if _, err := db.CreateComment(sqlc.InsertCommentParams{PostID: post.ID, UserID: alice.ID, Body: "hi", CreatedAt: baseTime}); err != nil {
			t.Fatalf("CreateComment() error = %v", err)
		}
		if _, err := db.CreateSavedPost(sqlc.InsertSavedPostParams{UserID: alice.ID, PostID: post.ID, CreatedAt: baseTime}); err != nil {
			t.Fatalf("CreateSavedPost() error = %v", err)
		}
		if _, err := db.CreateTrendVote(sqlc.InsertTrendVoteParams{PostID: post.ID, UserID: alice.ID, IsUptrend: true, CreatedAt: baseTime}, baseTime.Add(-24*time.Hour)); err != nil {
			t.Fatalf("CreateTrendVote() error = %v", err)
		}

		deleted, err := db.DeletePost(post.ID)
		if err != nil {
			t.Fatalf("DeletePost() error = %v", err)
		}
		if deleted.MediaPath != "posts/p.png" {
			t.Errorf("deleted MediaPath = %q, want posts/p.png", deleted.MediaPath)
		}

		comments, _ := db.ListCommentsByPost(post.ID)
		if len(comments) != 0 {
			t.Errorf("comments after delete = %d, want 0", len(comments))
		}
		saved, _ := db.ListSavedPosts(alice.ID)
		if len(saved) != 0 {
			t.Errorf("saved posts after delete = %d, want 0", len(saved))
		}
		var votes int
		db.db.QueryRow("SELECT COUNT(*) FROM trend_votes").Scan(&votes)
		if votes != 0 {
			t.Errorf("votes after delete = %d, want 0", votes)
		}
	})

	t.Run("missing post is ErrNotFound", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.DeletePost(99)
		if !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("DeletePost() error = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteDatabase_CreateTrendVote(t *testing.T) {
	window := 24 * time.Hour

	t.Run("recomputes trend level", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")
		carol := createUser(t, db, "carol")
		post := createPost(t, db, alice.ID)

		votes := []struct {
			userID int64
			up     bool
			want   int64
		}{
			{alice.ID, true, 10},
			{bob.ID, false, 5},
			{carol.ID, false, 3},
		}
		for _, v := range votes {
			got, err := db.CreateTrendVote(sqlc.InsertTrendVoteParams{
				PostID: post.ID, UserID: v.userID, IsUptrend: v.up, CreatedAt: baseTime,
			}, baseTime.Add(-window))
			if err != nil {
				t.Fatalf("CreateTrendVote() error = %v", err)
			}
			if got.TrendLevel != v.want {
				t.Errorf("TrendLevel = %d, want %d", got.TrendLevel, v.want)
			}
		}
	})

	t.Run("rejects second vote inside window", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")
		post := createPost(t, db, alice.ID)

		params := sqlc.InsertTrendVoteParams{PostID: post.ID, UserID: alice.ID, IsUptrend: true, CreatedAt: baseTime}
		if _, err := db.CreateTrendVote(params, baseTime.Add(-window)); err != nil {
			t.Fatalf("first CreateTrendVote() error = %v", err)
		}

		later := baseTime.Add(time.Hour)
		params.CreatedAt = later
		params.IsUptrend = false
		_, err := db.CreateTrendVote(params, later.Add(-window))
		if !errors.Is(err, dareme.ErrDuplicate) {
			t.Fatalf("second CreateTrendVote() error = %v, want ErrDuplicate", err)
		}

		n, err := db.CountTrendVotesSince(post.ID, alice.ID, time.Time{})
		if err != nil {
			t.Fatalf("CountTrendVotesSince() error = %v", err)
		}
		if n != 1 {
			t.Errorf("vote rows = %d, want 1", n)
		}
	})

	t.Run("accepts vote after window", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")
		post := createPost(t, db, alice.ID)

		params := sqlc.InsertTrendVoteParams{PostID: post.ID, UserID: alice.ID, IsUptrend: true, CreatedAt: baseTime}
		if _, err := db.CreateTrendVote(params, baseTime.Add(-window)); err != nil {
			t.Fatalf("first CreateTrendVote() error = %v", err)
		}

		later := baseTime.Add(window + time.Second)
		params.CreatedAt = later
		params.IsUptrend = false
		got, err := db.CreateTrendVote(params, later.Add(-window))
		if err != nil {
			t.Fatalf("second CreateTrendVote() error = %v", err)
		}
		if got.TrendLevel != 5 {
			t.Errorf("TrendLevel = %d, want 5", got.TrendLevel)
		}
	})

	t.Run("missing post is ErrNotFound", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")

		_, err := db.CreateTrendVote(sqlc.InsertTrendVoteParams{PostID: 7, UserID: alice.ID, CreatedAt: baseTime}, baseTime.Add(-window))
		if !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("CreateTrendVote() error = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteDatabase_Follows(t *testing.T) {
	t.Run("duplicate follow maps to ErrDuplicate", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")

		params := sqlc.InsertFollowParams{UserID: bob.ID, FollowerID: alice.ID, CreatedAt: baseTime}
		if _, err := db.CreateFollow(params); err != nil {
			t.Fatalf("CreateFollow() error = %v", err)
		}
		if _, err := db.CreateFollow(params); !errors.Is(err, dareme.ErrDuplicate) {
			t.Errorf("second CreateFollow() error = %v, want ErrDuplicate", err)
		}

		n, _ := db.CountFollowers(bob.ID)
		if n != 1 {
			t.Errorf("CountFollowers() = %d, want 1", n)
		}
	})

	t.Run("follow of missing user maps to ErrNotFound", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")

		_, err := db.CreateFollow(sqlc.InsertFollowParams{UserID: 99, FollowerID: alice.ID, CreatedAt: baseTime})
		if !errors.Is(err, dareme.ErrNotFound) {
			t.Errorf("CreateFollow() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("lists followers and following", func(t *testing.T) {
		db := newTestDB(t)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")
		db.CreateFollow(sqlc.InsertFollowParams{UserID: bob.ID, FollowerID: alice.ID, CreatedAt: baseTime})

		followers, err := db.ListFollowers(bob.ID)
		if err != nil {
			t.Fatalf("ListFollowers() error = %v", err)
		}
		if len(followers) != 1 || followers[0].ID != alice.ID {
			t.Errorf("ListFollowers() = %v, want [alice]", followers)
		}

		following, err := db.ListFollowing(alice.ID)
		if err != nil {
			t.Fatalf("ListFollowing() error = %v", err)
		}
		if len(following) != 1 || following[0].ID != bob.ID {
			t.Errorf("ListFollowing() = %v, want [bob]", following)
		}
	})
}

func TestSQLiteDatabase_Messages(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	send := func(from, to int64, content string, at time.Time) {
		t.Helper()
		if _, err := db.CreateMessage(sqlc.InsertMessageParams{SenderID: from, ReceiverID: to, Content: content, CreatedAt: at}); err != nil {
			t.Fatalf("CreateMessage() error = %v", err)
		}
	}
	send(alice.ID, bob.ID, "one", baseTime)
	send(bob.ID, alice.ID, "two", baseTime.Add(time.Minute))
	send(carol.ID, bob.ID, "hey", baseTime.Add(2*time.Minute))
	send(alice.ID, bob.ID, "three", baseTime.Add(3*time.Minute))

	t.Run("conversations newest first with usernames", func(t *testing.T) {
		convs, err := db.ListConversations(bob.ID)
		if err != nil {
			t.Fatalf("ListConversations() error = %v", err)
		}
		if len(convs) != 2 {
			t.Fatalf("ListConversations() len = %d, want 2", len(convs))
		}
		if convs[0].OtherUsername != "alice" || convs[0].LastMessage != "three" {
			t.Errorf("first conversation = %+v, want alice/three", convs[0])
		}
		if convs[0].UnreadCount != 2 {
			t.Errorf("alice unread = %d, want 2", convs[0].UnreadCount)
		}
		if convs[1].OtherUsername != "carol" {
			t.Errorf("second conversation = %+v, want carol", convs[1])
		}
	})

	t.Run("thread is newest first and limited", func(t *testing.T) {
		msgs, err := db.ListThread(alice.ID, bob.ID, 2)
		if err != nil {
			t.Fatalf("ListThread() error = %v", err)
		}
		if len(msgs) != 2 {
			t.Fatalf("ListThread() len = %d, want 2", len(msgs))
		}
		if msgs[0].Content != "three" || msgs[1].Content != "two" {
			t.Errorf("ListThread() = [%s %s], want [three two]", msgs[0].Content, msgs[1].Content)
		}
	})

	t.Run("mark read flips only one sender", func(t *testing.T) {
		n, err := db.MarkMessagesRead(bob.ID, alice.ID)
		if err != nil {
			t.Fatalf("MarkMessagesRead() error = %v", err)
		}
		if n != 2 {
			t.Errorf("MarkMessagesRead() = %d, want 2", n)
		}
		unread, _ := db.CountUnreadMessages(bob.ID)
		if unread != 1 {
			t.Errorf("CountUnreadMessages() = %d, want 1", unread)
		}
	})
}

func TestSQLiteDatabase_Stories(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	story, err := db.CreateStory(sqlc.InsertStoryParams{
		UserID: alice.ID, MediaPath: "stories/s.mp4", CreatedAt: baseTime, ExpiresAt: baseTime.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateStory() error = %v", err)
	}

	t.Run("active before expiry only", func(t *testing.T) {
		active, _ := db.ListActiveStories(0, baseTime.Add(23*time.Hour))
		if len(active) != 1 {
			t.Errorf("active before expiry = %d, want 1", len(active))
		}
		active, _ = db.ListActiveStories(alice.ID, baseTime.Add(24*time.Hour))
		if len(active) != 0 {
			t.Errorf("active at expiry = %d, want 0", len(active))
		}
		active, _ = db.ListActiveStories(bob.ID, baseTime)
		if len(active) != 0 {
			t.Errorf("active for bob = %d, want 0", len(active))
		}
	})

	t.Run("views are unique per viewer", func(t *testing.T) {
		view := sqlc.InsertStoryViewParams{StoryID: story.ID, ViewerID: bob.ID, ViewedAt: baseTime}
		if err := db.CreateStoryView(view); err != nil {
			t.Fatalf("CreateStoryView() error = %v", err)
		}
		if err := db.CreateStoryView(view); !errors.Is(err, dareme.ErrDuplicate) {
			t.Errorf("second CreateStoryView() error = %v, want ErrDuplicate", err)
		}
		viewers, _ := db.ListStoryViewers(story.ID)
		if len(viewers) != 1 || viewers[0].Username != "bob" {
			t.Errorf("ListStoryViewers() = %v, want [bob]", viewers)
		}
	})
}

func TestSQLiteDatabase_ResolveReport(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")

	report, err := db.CreateReport(sqlc.InsertReportParams{
		ReporterID: alice.ID, ContentType: "post", ContentID: 1, Reason: "spam", Status: "pending", CreatedAt: baseTime,
	})
	if err != nil {
		t.Fatalf("CreateReport() error = %v", err)
	}
	if report.ResolvedAt.Valid {
		t.Error("new report has ResolvedAt set")
	}

	if err := db.ResolveReport(report.ID, "dismissed", baseTime.Add(time.Hour)); err != nil {
		t.Fatalf("ResolveReport() error = %v", err)
	}

	got, _ := db.FindReportByID(report.ID)
	if got.Status != "dismissed" || !got.ResolvedAt.Valid {
		t.Errorf("report after resolve = %+v", got)
	}

	if err := db.ResolveReport(report.ID, "resolved", baseTime); !errors.Is(err, dareme.ErrInvalidState) {
		t.Errorf("second ResolveReport() error = %v, want ErrInvalidState", err)
	}
	if err := db.ResolveReport(999, "resolved", baseTime); !errors.Is(err, dareme.ErrNotFound) {
		t.Errorf("ResolveReport(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteDatabase_CreateSubmissionVote(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	challenge, err := db.CreateChallenge(sqlc.InsertChallengeParams{
		CreatorID: alice.ID, Title: "jump", Status: "active", CreatedAt: baseTime, EndsAt: baseTime.Add(72 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateChallenge() error = %v", err)
	}
	submission, err := db.CreateSubmission(sqlc.InsertChallengeSubmissionParams{
		ChallengeID: challenge.ID, UserID: bob.ID, MediaPath: "challenges/c.mp4", CreatedAt: baseTime,
	})
	if err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	vote := sqlc.InsertChallengeVoteParams{SubmissionID: submission.ID, UserID: alice.ID, CreatedAt: baseTime}
	got, err := db.CreateSubmissionVote(vote)
	if err != nil {
		t.Fatalf("CreateSubmissionVote() error = %v", err)
	}
	if got.VoteCount != 1 {
		t.Errorf("VoteCount = %d, want 1", got.VoteCount)
	}

	if _, err := db.CreateSubmissionVote(vote); !errors.Is(err, dareme.ErrDuplicate) {
		t.Errorf("second CreateSubmissionVote() error = %v, want ErrDuplicate", err)
	}

	after, _ := db.FindSubmissionByID(submission.ID)
	if after.VoteCount != 1 {
		t.Errorf("VoteCount after duplicate = %d, want 1", after.VoteCount)
	}
}

func TestSQLiteDatabase_BackupTo(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "alice")

	dest := filepath.Join(t.TempDir(), "backup.db")
	if err := db.BackupTo(dest); err != nil {
		t.Fatalf("BackupTo() error = %v", err)
	}

	restored, err := NewSQLiteDatabase(dest)
	if err != nil {
		t.Fatalf("opening backup: %v", err)
	}
	defer restored.Close()

	user, err := restored.FindUserByUsername("alice")
	if err != nil {
		t.Fatalf("FindUserByUsername() on backup error = %v", err)
	}
	if user == nil {
		t.Error("backup is missing user alice")
	}
}
