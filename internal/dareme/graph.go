package dareme

import (
	"fmt"

	"dareme/internal/database/sqlc"
)

// Follow makes followerID follow userID. Following twice returns
// ErrDuplicate; following yourself returns ErrInvalidArgument.
func (s *Service) Follow(userID, followerID int64) (int64, error) {
	if userID == followerID {
		return 0, fmt.Errorf("%w: users cannot follow themselves", ErrInvalidArgument)
	}

	id, err := s.database.CreateFollow(sqlc.InsertFollowParams{
		UserID:     userID,
		FollowerID: followerID,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("following user %d: %w", userID, err)
	}

	s.logger.Info("follow created", "user_id", userID, "follower_id", followerID)
	return id, nil
}

// Unfollow removes the edge. Returns ErrNotFound if it did not exist.
func (s *Service) Unfollow(userID, followerID int64) error {
	if err := s.database.DeleteFollow(userID, followerID); err != nil {
		return fmt.Errorf("unfollowing user %d: %w", userID, err)
	}
	s.logger.Info("follow removed", "user_id", userID, "follower_id", followerID)
	return nil
}

// IsFollowing reports whether followerID follows userID.
func (s *Service) IsFollowing(userID, followerID int64) (bool, error) {
	n, err := s.database.CountFollowEdges(userID, followerID)
	if err != nil {
		return false, fmt.Errorf("checking follow: %w", err)
	}
	return n > 0, nil
}

// Followers lists the accounts following userID.
func (s *Service) Followers(userID int64) ([]*sqlc.User, error) {
	users, err := s.database.ListFollowers(userID)
	if err != nil {
		return nil, fmt.Errorf("listing followers: %w", err)
	}
	return users, nil
}

// Following lists the accounts userID follows.
func (s *Service) Following(userID int64) ([]*sqlc.User, error) {
	users, err := s.database.ListFollowing(userID)
	if err != nil {
		return nil, fmt.Errorf("listing following: %w", err)
	}
	return users, nil
}

// Analytics summarises a creator's reach.
type Analytics struct {
	PostCount     int64
	TotalViews    int64
	AvgTrend      float64
	FollowerCount int64
}

// GetAnalytics computes post and follower statistics for userID. A user
// with no posts gets zeroes rather than an error.
func (s *Service) GetAnalytics(userID int64) (*Analytics, error) {
	stats, err := s.database.PostStatsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("computing post stats: %w", err)
	}

	followers, err := s.database.CountFollowers(userID)
	if err != nil {
		return nil, fmt.Errorf("counting followers: %w", err)
	}

	return &Analytics{
		PostCount:     stats.PostCount,
		TotalViews:    stats.TotalViews,
		AvgTrend:      stats.AvgTrend,
		FollowerCount: followers,
	}, nil
}
