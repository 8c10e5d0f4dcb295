package dareme

import (
	"fmt"
	"time"

	"dareme/internal/database/sqlc"
)

// VoteWindow is how long a user must wait before voting on the same post again.
const VoteWindow = 24 * time.Hour

// DefaultTrendLevel is the level of a post nobody has voted on.
const DefaultTrendLevel = 1

// TrendLevel scores a post from 0 to 10 as the truncated share of upvotes.
func TrendLevel(upvotes, total int64) int64 {
	if total <= 0 {
		return DefaultTrendLevel
	}
	return upvotes * 10 / total
}

// HasVoted reports whether userID voted on postID within the vote window.
func (s *Service) HasVoted(postID, userID int64) (bool, error) {
	n, err := s.database.CountTrendVotesSince(postID, userID, s.now().Add(-VoteWindow))
	if err != nil {
		return false, fmt.Errorf("checking votes: %w", err)
	}
	return n > 0, nil
}

// Vote records an up or down vote and returns the post with its new trend
// level. A second vote inside the window fails with ErrDuplicate and leaves
// the tally untouched.
func (s *Service) Vote(postID, userID int64, isUptrend bool) (*sqlc.Post, error) {
	now := s.now()
	post, err := s.database.CreateTrendVote(sqlc.InsertTrendVoteParams{
		PostID:    postID,
		UserID:    userID,
		IsUptrend: isUptrend,
		CreatedAt: now,
	}, now.Add(-VoteWindow))
	if err != nil {
		return nil, fmt.Errorf("voting on post %d: %w", postID, err)
	}

	s.logger.Info("trend vote recorded", "post_id", postID, "user_id", userID, "up", isUptrend, "trend_level", post.TrendLevel)
	return post, nil
}
