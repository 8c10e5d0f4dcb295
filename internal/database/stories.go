package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dareme/internal/database/sqlc"
)

// Story operations

func (s *SQLiteDatabase) CreateStory(params sqlc.InsertStoryParams) (*sqlc.Story, error) {
	ctx := context.Background()

	id, err := s.queries.InsertStory(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting story: %w", mapError(err))
	}

	story, err := s.queries.GetStoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted story: %w", err)
	}
	return &story, nil
}

func (s *SQLiteDatabase) FindStoryByID(id int64) (*sqlc.Story, error) {
	story, err := s.queries.GetStoryByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding story by id: %w", err)
	}
	return &story, nil
}

func (s *SQLiteDatabase) ListActiveStories(userID int64, now time.Time) ([]*sqlc.Story, error) {
	ctx := context.Background()

	var stories []sqlc.Story
	var err error
	if userID == 0 {
		stories, err = s.queries.ListActiveStories(ctx, now)
	} else {
		stories, err = s.queries.ListActiveStoriesByUser(ctx, sqlc.ListActiveStoriesByUserParams{
			UserID: userID,
			Now:    now,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("listing active stories: %w", err)
	}
	return toPointers(stories), nil
}

func (s *SQLiteDatabase) CreateStoryView(params sqlc.InsertStoryViewParams) error {
	if _, err := s.queries.InsertStoryView(context.Background(), params); err != nil {
		return fmt.Errorf("inserting story view: %w", mapError(err))
	}
	return nil
}

func (s *SQLiteDatabase) ListStoryViewers(storyID int64) ([]*sqlc.ListStoryViewersRow, error) {
	rows, err := s.queries.ListStoryViewers(context.Background(), storyID)
	if err != nil {
		return nil, fmt.Errorf("listing story viewers: %w", err)
	}
	return toPointers(rows), nil
}
