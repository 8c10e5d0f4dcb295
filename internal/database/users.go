package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dareme/internal/database/sqlc"
)

// User operations

func (s *SQLiteDatabase) CreateUser(params sqlc.InsertUserParams) (*sqlc.User, error) {
	ctx := context.Background()

	id, err := s.queries.InsertUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", mapError(err))
	}

	user, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteDatabase) FindUserByID(id int64) (*sqlc.User, error) {
	user, err := s.queries.GetUserByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return &user, nil
}

func (s *SQLiteDatabase) FindUserByUsername(username string) (*sqlc.User, error) {
	user, err := s.queries.GetUserByUsername(context.Background(), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding user by username: %w", err)
	}
	return &user, nil
}

func (s *SQLiteDatabase) CountUsersByUsername(username string) (int64, error) {
	n, err := s.queries.CountUsersByUsername(context.Background(), username)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

func (s *SQLiteDatabase) UpdateUserPrivacy(id int64, isPrivate bool) error {
	rows, err := s.queries.UpdateUserPrivacy(context.Background(), sqlc.UpdateUserPrivacyParams{
		IsPrivate: isPrivate,
		ID:        id,
	})
	if err != nil {
		return fmt.Errorf("updating user privacy: %w", err)
	}
	return notFoundUnlessAffected(rows, "user", id)
}

func (s *SQLiteDatabase) ListUsers() ([]*sqlc.User, error) {
	users, err := s.queries.ListUsers(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return toPointers(users), nil
}

func (s *SQLiteDatabase) DailySignups() ([]*sqlc.GetDailySignupsRow, error) {
	rows, err := s.queries.GetDailySignups(context.Background())
	if err != nil {
		return nil, fmt.Errorf("counting daily signups: %w", err)
	}
	return toPointers(rows), nil
}

// toPointers converts a slice of values to a slice of pointers into it.
func toPointers[T any](items []T) []*T {
	result := make([]*T, len(items))
	for i := range items {
		result[i] = &items[i]
	}
	return result
}
