package dareme

import (
	"fmt"

	"dareme/internal/database/sqlc"
)

// DefaultRecentPostsLimit bounds RecentPosts when the caller passes no limit.
const DefaultRecentPostsLimit = 20

// ListUsers returns every account in registration order.
func (s *Service) ListUsers() ([]*sqlc.User, error) {
	users, err := s.database.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// DailySignups counts registrations per UTC day.
func (s *Service) DailySignups() ([]*sqlc.GetDailySignupsRow, error) {
	rows, err := s.database.DailySignups()
	if err != nil {
		return nil, fmt.Errorf("counting signups: %w", err)
	}
	return rows, nil
}

// DailyActivity counts posts and distinct posting users per UTC day.
func (s *Service) DailyActivity() ([]*sqlc.GetDailyActivityRow, error) {
	rows, err := s.database.DailyActivity()
	if err != nil {
		return nil, fmt.Errorf("counting activity: %w", err)
	}
	return rows, nil
}

// RecentPosts returns the newest posts across all users with their authors.
func (s *Service) RecentPosts(limit int) ([]*sqlc.ListRecentPostsRow, error) {
	if limit <= 0 {
		limit = DefaultRecentPostsLimit
	}
	rows, err := s.database.ListRecentPosts(limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent posts: %w", err)
	}
	return rows, nil
}
