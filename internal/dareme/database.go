package dareme

import (
	"time"

	"dareme/internal/database/sqlc"
)

// Database provides an interface for persistent storage of the social graph
// and its content. Single-row Find methods return (nil, nil) when the row
// does not exist. Mutations that violate uniqueness return ErrDuplicate;
// mutations that reference a missing row return ErrNotFound.
type Database interface {
	// User operations

	CreateUser(params sqlc.InsertUserParams) (*sqlc.User, error)
	FindUserByID(id int64) (*sqlc.User, error)
	FindUserByUsername(username string) (*sqlc.User, error)
	CountUsersByUsername(username string) (int64, error)
	UpdateUserPrivacy(id int64, isPrivate bool) error
	ListUsers() ([]*sqlc.User, error)
	DailySignups() ([]*sqlc.GetDailySignupsRow, error)

	// Post operations

	CreatePost(params sqlc.InsertPostParams) (*sqlc.Post, error)
	FindPostByID(id int64) (*sqlc.Post, error)

	// DeletePost removes a post and its comments in one transaction and
	// returns the deleted row so the caller can release its media.
	DeletePost(id int64) (*sqlc.Post, error)

	UpdatePostArchived(id int64, archived bool) error
	IncrementPostViews(id int64) error
	ListPostsByUser(userID int64, includeArchived bool) ([]*sqlc.Post, error)
	ListFeed(userID int64, limit int) ([]*sqlc.Post, error)
	ListRecentPosts(limit int) ([]*sqlc.ListRecentPostsRow, error)
	PostStatsByUser(userID int64) (*sqlc.GetPostStatsByUserRow, error)
	DailyActivity() ([]*sqlc.GetDailyActivityRow, error)

	// Comment operations

	CreateComment(params sqlc.InsertCommentParams) (*sqlc.Comment, error)
	ListCommentsByPost(postID int64) ([]*sqlc.Comment, error)

	// Saved post operations

	CreateSavedPost(params sqlc.InsertSavedPostParams) (int64, error)
	DeleteSavedPost(userID, postID int64) error
	ListSavedPosts(userID int64) ([]*sqlc.Post, error)

	// Trend operations

	// CountTrendVotesSince counts votes by userID on postID cast after since.
	CountTrendVotesSince(postID, userID int64, since time.Time) (int64, error)

	// CreateTrendVote records a vote and recomputes the post's trend level
	// in a single transaction. It returns ErrDuplicate without writing when
	// the user already voted on the post after windowStart.
	CreateTrendVote(params sqlc.InsertTrendVoteParams, windowStart time.Time) (*sqlc.Post, error)

	// Follow operations

	CreateFollow(params sqlc.InsertFollowParams) (int64, error)
	DeleteFollow(userID, followerID int64) error
	CountFollowEdges(userID, followerID int64) (int64, error)
	CountFollowers(userID int64) (int64, error)
	ListFollowers(userID int64) ([]*sqlc.User, error)
	ListFollowing(followerID int64) ([]*sqlc.User, error)

	// Message operations

	CreateMessage(params sqlc.InsertMessageParams) (*sqlc.Message, error)

	// ListThread returns at most limit messages between two users, newest first.
	ListThread(userID, otherUserID int64, limit int) ([]*sqlc.Message, error)

	MarkMessagesRead(receiverID, senderID int64) (int64, error)
	CountUnreadMessages(receiverID int64) (int64, error)
	ListConversations(userID int64) ([]*sqlc.ListConversationsRow, error)

	// Story operations

	CreateStory(params sqlc.InsertStoryParams) (*sqlc.Story, error)
	FindStoryByID(id int64) (*sqlc.Story, error)

	// ListActiveStories returns stories expiring after now. A zero userID
	// lists every user's stories.
	ListActiveStories(userID int64, now time.Time) ([]*sqlc.Story, error)

	CreateStoryView(params sqlc.InsertStoryViewParams) error
	ListStoryViewers(storyID int64) ([]*sqlc.ListStoryViewersRow, error)

	// Report operations

	CreateReport(params sqlc.InsertReportParams) (*sqlc.Report, error)
	FindReportByID(id int64) (*sqlc.Report, error)

	// ResolveReport moves a pending report to status. It returns
	// ErrInvalidState if the report is no longer pending.
	ResolveReport(id int64, status string, resolvedAt time.Time) error

	ListReportsByStatus(status string) ([]*sqlc.Report, error)

	// Challenge operations

	CreateChallenge(params sqlc.InsertChallengeParams) (*sqlc.Challenge, error)
	FindChallengeByID(id int64) (*sqlc.Challenge, error)
	UpdateChallengeStatus(id int64, status string) error
	ListChallengesByStatus(status string) ([]*sqlc.Challenge, error)
	CreateSubmission(params sqlc.InsertChallengeSubmissionParams) (*sqlc.ChallengeSubmission, error)
	FindSubmissionByID(id int64) (*sqlc.ChallengeSubmission, error)
	ListSubmissions(challengeID int64) ([]*sqlc.ChallengeSubmission, error)

	// CreateSubmissionVote records a vote and increments the submission's
	// vote count in one transaction.
	CreateSubmissionVote(params sqlc.InsertChallengeVoteParams) (*sqlc.ChallengeSubmission, error)

	// Maintenance

	// BackupTo writes a consistent copy of the database to destPath.
	BackupTo(destPath string) error

	// CheckMigrations verifies the schema is at the latest version.
	CheckMigrations() error

	// Migrate applies pending schema migrations.
	Migrate() error

	Close() error
}
