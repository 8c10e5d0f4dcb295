package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dareme/internal/config"
	"dareme/internal/dareme"
	"dareme/internal/database"
	"dareme/internal/database/sqlc"
	"dareme/internal/encryption"
	"dareme/internal/media"
)

// DareApp is the application layer between the CLI and dareme.Service.
// It constructs all dependencies from config, resolves usernames and local
// file paths, and checks that writes are made by the right Session.
type DareApp struct {
	cfg       *config.Config
	db        dareme.Database
	media     dareme.MediaStore
	encryptor dareme.Encryptor
	service   *dareme.Service
	logger    dareme.Logger
	clock     dareme.Clock
	logFile   *os.File
}

// Session identifies the authenticated user a write is made on behalf of.
type Session struct {
	UserID   int64
	Username string
}

// NewDareApp creates a fully wired DareApp from the given config.
// command identifies the CLI command being run and tags every log line.
// The caller must call Close when done.
func NewDareApp(cfg *config.Config, command string) (*DareApp, error) {
	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if err := db.CheckMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database schema out of date (run 'dareme db migrate'): %w", err)
	}

	store, err := media.NewStoreFromConfig(context.Background(), cfg.Media)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating media store: %w", err)
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Backup)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	clock := dareme.RealClock{}
	runID := clock.Now().UTC().Format("20060102T150405Z") + "-" + command
	logger, logFile, err := newLogger(cfg.LogDir, runID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	a := newDareApp(cfg, db, store, enc, &slogAdapter{l: logger}, clock, dareme.UUIDGenerator{})
	a.logFile = logFile
	return a, nil
}

func newDareApp(cfg *config.Config, db dareme.Database, store dareme.MediaStore, enc dareme.Encryptor, logger dareme.Logger, clock dareme.Clock, idgen dareme.IDGenerator) *DareApp {
	return &DareApp{
		cfg:       cfg,
		db:        db,
		media:     store,
		encryptor: enc,
		service:   dareme.NewService(db, store, uploadPolicy(cfg.Upload), logger, clock, idgen),
		logger:    logger,
		clock:     clock,
	}
}

// uploadPolicy converts the upload config, falling back to the defaults
// for anything left unset.
func uploadPolicy(cfg config.UploadConfig) dareme.UploadPolicy {
	policy := dareme.DefaultUploadPolicy()
	if cfg.MaxSize > 0 {
		policy.MaxSize = cfg.MaxSize
	}
	if len(cfg.ImageTypes) > 0 {
		policy.ImageTypes = cfg.ImageTypes
	}
	if len(cfg.VideoTypes) > 0 {
		policy.VideoTypes = cfg.VideoTypes
	}
	return policy
}

// Migrate brings the configured database up to the latest schema.
func Migrate(cfg *config.Config) error {
	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	return db.Migrate()
}

// MigrationStatus reports whether the configured database is up to date.
func MigrationStatus(cfg *config.Config) error {
	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	return db.CheckMigrations()
}

// Service exposes the domain service for read-only queries.
func (a *DareApp) Service() *dareme.Service {
	return a.service
}

// Login authenticates username and password and returns the Session that
// later writes must carry.
func (a *DareApp) Login(username, password string) (*Session, error) {
	id, err := a.service.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("login", "user", username)
	return &Session{UserID: id, Username: username}, nil
}

// Register creates a local account.
func (a *DareApp) Register(username, email, password, bio string) (int64, error) {
	return a.service.Register(username, email, password, bio)
}

// SetPrivacy changes the session user's privacy flag.
func (a *DareApp) SetPrivacy(sess *Session, private bool) error {
	return a.service.SetPrivacy(sess.UserID, private)
}

// LookupUser resolves a username to its account.
func (a *DareApp) LookupUser(username string) (*sqlc.User, error) {
	return a.service.GetUserByUsername(username)
}

// uploadFile stores a local file through the service's upload policy.
func (a *DareApp) uploadFile(kind dareme.MediaKind, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("opening media: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat media: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", dareme.ErrInvalidArgument, localPath)
	}

	return a.service.UploadMedia(kind, filepath.Base(localPath), f, info.Size())
}

// discardUpload removes an uploaded object whose database row could not be
// written.
func (a *DareApp) discardUpload(key string) {
	if err := a.media.Delete(key); err != nil {
		a.logger.Warn("discarding upload failed", "key", key, "error", err)
	}
}

// CreatePost uploads the local file and creates a post for the session user.
func (a *DareApp) CreatePost(sess *Session, localPath, caption string) (int64, error) {
	key, err := a.uploadFile(dareme.MediaKindPost, localPath)
	if err != nil {
		return 0, err
	}
	id, err := a.service.CreatePost(sess.UserID, key, caption)
	if err != nil {
		a.discardUpload(key)
		return 0, err
	}
	return id, nil
}

// ownPost loads a post and checks the session user owns it.
func (a *DareApp) ownPost(sess *Session, postID int64) error {
	post, err := a.service.GetPost(postID)
	if err != nil {
		return err
	}
	if post.UserID != sess.UserID {
		return fmt.Errorf("%w: post %d belongs to another user", dareme.ErrNotAuthorized, postID)
	}
	return nil
}

// DeletePost deletes one of the session user's posts.
func (a *DareApp) DeletePost(sess *Session, postID int64) error {
	if err := a.ownPost(sess, postID); err != nil {
		return err
	}
	return a.service.DeletePost(postID)
}

// ArchivePost archives or restores one of the session user's posts.
func (a *DareApp) ArchivePost(sess *Session, postID int64, archived bool) error {
	if err := a.ownPost(sess, postID); err != nil {
		return err
	}
	return a.service.Archive(postID, archived)
}

// Comment adds a comment by the session user.
func (a *DareApp) Comment(sess *Session, postID int64, text string) (int64, error) {
	return a.service.AddComment(postID, sess.UserID, text)
}

// Vote casts the session user's trend vote.
func (a *DareApp) Vote(sess *Session, postID int64, isUptrend bool) (*sqlc.Post, error) {
	return a.service.Vote(postID, sess.UserID, isUptrend)
}

// SavePost bookmarks a post for the session user.
func (a *DareApp) SavePost(sess *Session, postID int64) (int64, error) {
	return a.service.SavePost(sess.UserID, postID)
}

// UnsavePost removes a bookmark of the session user.
func (a *DareApp) UnsavePost(sess *Session, postID int64) error {
	return a.service.UnsavePost(sess.UserID, postID)
}

// Follow makes the session user follow username.
func (a *DareApp) Follow(sess *Session, username string) (int64, error) {
	target, err := a.service.GetUserByUsername(username)
	if err != nil {
		return 0, err
	}
	return a.service.Follow(target.ID, sess.UserID)
}

// Unfollow removes the session user's follow of username.
func (a *DareApp) Unfollow(sess *Session, username string) error {
	target, err := a.service.GetUserByUsername(username)
	if err != nil {
		return err
	}
	return a.service.Unfollow(target.ID, sess.UserID)
}

// SendMessage sends a direct message to username. attachPath, when set, is
// uploaded and stored with the message.
func (a *DareApp) SendMessage(sess *Session, toUsername, content, attachPath string) (int64, error) {
	to, err := a.service.GetUserByUsername(toUsername)
	if err != nil {
		return 0, err
	}

	var key string
	if attachPath != "" {
		if key, err = a.uploadFile(dareme.MediaKindMessage, attachPath); err != nil {
			return 0, err
		}
	}

	id, err := a.service.SendMessage(sess.UserID, to.ID, content, key)
	if err != nil {
		if key != "" {
			a.discardUpload(key)
		}
		return 0, err
	}
	return id, nil
}

// Thread returns the conversation with username in chronological order and
// marks the other side's messages as read.
func (a *DareApp) Thread(sess *Session, withUsername string, limit int) ([]*sqlc.Message, error) {
	other, err := a.service.GetUserByUsername(withUsername)
	if err != nil {
		return nil, err
	}
	msgs, err := a.service.GetThread(sess.UserID, other.ID, limit)
	if err != nil {
		return nil, err
	}
	if _, err := a.service.MarkRead(sess.UserID, other.ID); err != nil {
		return nil, err
	}
	return msgs, nil
}

// CreateStory uploads the local file as a story of the session user.
func (a *DareApp) CreateStory(sess *Session, localPath, caption string) (int64, error) {
	key, err := a.uploadFile(dareme.MediaKindStory, localPath)
	if err != nil {
		return 0, err
	}
	id, err := a.service.CreateStory(sess.UserID, key, caption)
	if err != nil {
		a.discardUpload(key)
		return 0, err
	}
	return id, nil
}

// ViewStory records that the session user viewed a story.
func (a *DareApp) ViewStory(sess *Session, storyID int64) error {
	return a.service.ViewStory(storyID, sess.UserID)
}

// Report files a moderation report by the session user.
func (a *DareApp) Report(sess *Session, contentType string, contentID int64, reason string) (int64, error) {
	return a.service.Report(sess.UserID, contentType, contentID, reason)
}

// ResolveReport closes a pending report. It is an operator action and
// carries no session.
func (a *DareApp) ResolveReport(reportID int64, status string) error {
	return a.service.ResolveReport(reportID, status)
}

// CreateChallenge opens a challenge created by the session user.
func (a *DareApp) CreateChallenge(sess *Session, title, description string, rewardPoints int64, durationDays int) (int64, error) {
	return a.service.CreateChallenge(sess.UserID, title, description, rewardPoints, durationDays)
}

// CloseChallenge closes a challenge. Only its creator may close it.
func (a *DareApp) CloseChallenge(sess *Session, challengeID int64) error {
	ch, err := a.service.GetChallenge(challengeID)
	if err != nil {
		return err
	}
	if ch.CreatorID != sess.UserID {
		return fmt.Errorf("%w: challenge %d was created by another user", dareme.ErrNotAuthorized, challengeID)
	}
	return a.service.CloseChallenge(challengeID)
}

// Submit uploads the local file as the session user's entry to a challenge.
func (a *DareApp) Submit(sess *Session, challengeID int64, localPath, caption string) (int64, error) {
	key, err := a.uploadFile(dareme.MediaKindChallenge, localPath)
	if err != nil {
		return 0, err
	}
	id, err := a.service.Submit(challengeID, sess.UserID, key, caption)
	if err != nil {
		a.discardUpload(key)
		return 0, err
	}
	return id, nil
}

// VoteSubmission casts the session user's vote for a submission.
func (a *DareApp) VoteSubmission(sess *Session, submissionID int64) (*sqlc.ChallengeSubmission, error) {
	return a.service.VoteSubmission(submissionID, sess.UserID)
}

// Close closes the database and the log file.
func (a *DareApp) Close() error {
	var errs []error
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing database: %w", err))
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	}
	return errors.Join(errs...)
}
