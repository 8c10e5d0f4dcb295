package dareme

import (
	"fmt"
	"strings"

	"dareme/internal/database/sqlc"
)

// DefaultFeedLimit bounds Feed when the caller passes no limit.
const DefaultFeedLimit = 50

// CreatePost publishes a post for userID. The media type is derived from
// the media path's extension.
func (s *Service) CreatePost(userID int64, mediaPath, caption string) (int64, error) {
	if mediaPath == "" {
		return 0, fmt.Errorf("%w: media path is required", ErrInvalidArgument)
	}

	post, err := s.database.CreatePost(sqlc.InsertPostParams{
		UserID:     userID,
		MediaPath:  mediaPath,
		Caption:    caption,
		MediaType:  MediaTypeFor(mediaPath),
		TrendLevel: DefaultTrendLevel,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("creating post: %w", err)
	}

	s.logger.Info("post created", "post_id", post.ID, "user_id", userID, "media_type", post.MediaType)
	return post.ID, nil
}

// GetPost returns the post with the given id.
func (s *Service) GetPost(postID int64) (*sqlc.Post, error) {
	post, err := s.database.FindPostByID(postID)
	if err != nil {
		return nil, fmt.Errorf("finding post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
	}
	return post, nil
}

// AddComment attaches a comment by userID to postID.
func (s *Service) AddComment(postID, userID int64, text string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: comment text is required", ErrInvalidArgument)
	}

	comment, err := s.database.CreateComment(sqlc.InsertCommentParams{
		PostID:    postID,
		UserID:    userID,
		Body:      text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("adding comment: %w", err)
	}

	s.logger.Info("comment added", "comment_id", comment.ID, "post_id", postID, "user_id", userID)
	return comment.ID, nil
}

// ListComments returns a post's comments, oldest first.
func (s *Service) ListComments(postID int64) ([]*sqlc.Comment, error) {
	comments, err := s.database.ListCommentsByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// DeletePost removes a post together with its comments, votes and saves,
// then releases its media object. A failure to release the media is logged
// and otherwise ignored; the post is already gone.
func (s *Service) DeletePost(postID int64) error {
	post, err := s.database.DeletePost(postID)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	if err := s.media.Delete(post.MediaPath); err != nil {
		s.logger.Warn("media cleanup failed", "post_id", postID, "key", post.MediaPath, "error", err)
	}

	s.logger.Info("post deleted", "post_id", postID)
	return nil
}

// Archive hides or restores a post.
func (s *Service) Archive(postID int64, archived bool) error {
	if err := s.database.UpdatePostArchived(postID, archived); err != nil {
		return fmt.Errorf("archiving post: %w", err)
	}
	s.logger.Info("post archive state changed", "post_id", postID, "archived", archived)
	return nil
}

// RecordView increments a post's view counter.
func (s *Service) RecordView(postID int64) error {
	if err := s.database.IncrementPostViews(postID); err != nil {
		return fmt.Errorf("recording view: %w", err)
	}
	return nil
}

// ListUserPosts returns a user's posts, newest first.
func (s *Service) ListUserPosts(userID int64, includeArchived bool) ([]*sqlc.Post, error) {
	posts, err := s.database.ListPostsByUser(userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

// Feed returns unarchived posts by userID and the accounts it follows,
// newest first.
func (s *Service) Feed(userID int64, limit int) ([]*sqlc.Post, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	posts, err := s.database.ListFeed(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("building feed: %w", err)
	}
	return posts, nil
}

// SavePost bookmarks postID for userID. Saving twice returns ErrDuplicate.
func (s *Service) SavePost(userID, postID int64) (int64, error) {
	id, err := s.database.CreateSavedPost(sqlc.InsertSavedPostParams{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("saving post: %w", err)
	}
	s.logger.Info("post saved", "post_id", postID, "user_id", userID)
	return id, nil
}

// UnsavePost removes a bookmark.
func (s *Service) UnsavePost(userID, postID int64) error {
	if err := s.database.DeleteSavedPost(userID, postID); err != nil {
		return fmt.Errorf("unsaving post: %w", err)
	}
	return nil
}

// ListSaved returns the posts userID bookmarked, most recently saved first.
func (s *Service) ListSaved(userID int64) ([]*sqlc.Post, error) {
	posts, err := s.database.ListSavedPosts(userID)
	if err != nil {
		return nil, fmt.Errorf("listing saved posts: %w", err)
	}
	return posts, nil
}
