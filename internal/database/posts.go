package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dareme/internal/dareme"
	"dareme/internal/database/sqlc"
)

// Post operations

func (s *SQLiteDatabase) CreatePost(params sqlc.InsertPostParams) (*sqlc.Post, error) {
	ctx := context.Background()

	id, err := s.queries.InsertPost(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", mapError(err))
	}

	post, err := s.queries.GetPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted post: %w", err)
	}
	return &post, nil
}

func (s *SQLiteDatabase) FindPostByID(id int64) (*sqlc.Post, error) {
	post, err := s.queries.GetPostByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding post by id: %w", err)
	}
	return &post, nil
}

func (s *SQLiteDatabase) DeletePost(id int64) (*sqlc.Post, error) {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.queries.WithTx(tx)

	post, err := qtx.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d", dareme.ErrNotFound, id)
		}
		return nil, fmt.Errorf("finding post: %w", err)
	}

	if err := qtx.DeleteCommentsByPost(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting comments: %w", err)
	}

	// Votes and saves cascade from the post row.
	if _, err := qtx.DeletePostByID(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &post, nil
}

func (s *SQLiteDatabase) UpdatePostArchived(id int64, archived bool) error {
	rows, err := s.queries.UpdatePostArchived(context.Background(), sqlc.UpdatePostArchivedParams{
		IsArchived: archived,
		ID:         id,
	})
	if err != nil {
		return fmt.Errorf("updating post archive state: %w", err)
	}
	return notFoundUnlessAffected(rows, "post", id)
}

func (s *SQLiteDatabase) IncrementPostViews(id int64) error {
	rows, err := s.queries.IncrementPostViews(context.Background(), id)
	if err != nil {
		return fmt.Errorf("incrementing post views: %w", err)
	}
	return notFoundUnlessAffected(rows, "post", id)
}

func (s *SQLiteDatabase) ListPostsByUser(userID int64, includeArchived bool) ([]*sqlc.Post, error) {
	posts, err := s.queries.ListPostsByUser(context.Background(), sqlc.ListPostsByUserParams{
		UserID:          userID,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		return nil, fmt.Errorf("listing posts by user: %w", err)
	}
	return toPointers(posts), nil
}

func (s *SQLiteDatabase) ListFeed(userID int64, limit int) ([]*sqlc.Post, error) {
	posts, err := s.queries.ListFeed(context.Background(), sqlc.ListFeedParams{
		UserID: userID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("listing feed: %w", err)
	}
	return toPointers(posts), nil
}

func (s *SQLiteDatabase) ListRecentPosts(limit int) ([]*sqlc.ListRecentPostsRow, error) {
	rows, err := s.queries.ListRecentPosts(context.Background(), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing recent posts: %w", err)
	}
	return toPointers(rows), nil
}

func (s *SQLiteDatabase) PostStatsByUser(userID int64) (*sqlc.GetPostStatsByUserRow, error) {
	stats, err := s.queries.GetPostStatsByUser(context.Background(), userID)
	if err != nil {
		return nil, fmt.Errorf("computing post stats: %w", err)
	}
	return &stats, nil
}

func (s *SQLiteDatabase) DailyActivity() ([]*sqlc.GetDailyActivityRow, error) {
	rows, err := s.queries.GetDailyActivity(context.Background())
	if err != nil {
		return nil, fmt.Errorf("counting daily activity: %w", err)
	}
	return toPointers(rows), nil
}

// Comment operations

func (s *SQLiteDatabase) CreateComment(params sqlc.InsertCommentParams) (*sqlc.Comment, error) {
	ctx := context.Background()

	id, err := s.queries.InsertComment(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", mapError(err))
	}

	comment, err := s.queries.GetCommentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted comment: %w", err)
	}
	return &comment, nil
}

func (s *SQLiteDatabase) ListCommentsByPost(postID int64) ([]*sqlc.Comment, error) {
	comments, err := s.queries.ListCommentsByPost(context.Background(), postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return toPointers(comments), nil
}

// Saved post operations

func (s *SQLiteDatabase) CreateSavedPost(params sqlc.InsertSavedPostParams) (int64, error) {
	id, err := s.queries.InsertSavedPost(context.Background(), params)
	if err != nil {
		return 0, fmt.Errorf("inserting saved post: %w", mapError(err))
	}
	return id, nil
}

func (s *SQLiteDatabase) DeleteSavedPost(userID, postID int64) error {
	rows, err := s.queries.DeleteSavedPost(context.Background(), sqlc.DeleteSavedPostParams{
		UserID: userID,
		PostID: postID,
	})
	if err != nil {
		return fmt.Errorf("deleting saved post: %w", err)
	}
	return notFoundUnlessAffected(rows, "saved post", postID)
}

func (s *SQLiteDatabase) ListSavedPosts(userID int64) ([]*sqlc.Post, error) {
	posts, err := s.queries.ListSavedPosts(context.Background(), userID)
	if err != nil {
		return nil, fmt.Errorf("listing saved posts: %w", err)
	}
	return toPointers(posts), nil
}

// Trend operations

func (s *SQLiteDatabase) CountTrendVotesSince(postID, userID int64, since time.Time) (int64, error) {
	n, err := s.queries.CountTrendVotesSince(context.Background(), sqlc.CountTrendVotesSinceParams{
		PostID: postID,
		UserID: userID,
		Since:  since,
	})
	if err != nil {
		return 0, fmt.Errorf("counting trend votes: %w", err)
	}
	return n, nil
}

func (s *SQLiteDatabase) CreateTrendVote(params sqlc.InsertTrendVoteParams, windowStart time.Time) (*sqlc.Post, error) {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.queries.WithTx(tx)

	if _, err := qtx.GetPostByID(ctx, params.PostID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d", dareme.ErrNotFound, params.PostID)
		}
		return nil, fmt.Errorf("finding post: %w", err)
	}

	recent, err := qtx.CountTrendVotesSince(ctx, sqlc.CountTrendVotesSinceParams{
		PostID: params.PostID,
		UserID: params.UserID,
		Since:  windowStart,
	})
	if err != nil {
		return nil, fmt.Errorf("counting recent votes: %w", err)
	}
	if recent > 0 {
		return nil, fmt.Errorf("%w: user %d already voted on post %d", dareme.ErrDuplicate, params.UserID, params.PostID)
	}

	if _, err := qtx.InsertTrendVote(ctx, params); err != nil {
		return nil, fmt.Errorf("inserting trend vote: %w", mapError(err))
	}

	tally, err := qtx.GetTrendTally(ctx, params.PostID)
	if err != nil {
		return nil, fmt.Errorf("tallying votes: %w", err)
	}

	if err := qtx.UpdatePostTrendLevel(ctx, sqlc.UpdatePostTrendLevelParams{
		TrendLevel: dareme.TrendLevel(tally.Upvotes, tally.TotalVotes),
		ID:         params.PostID,
	}); err != nil {
		return nil, fmt.Errorf("updating trend level: %w", err)
	}

	post, err := qtx.GetPostByID(ctx, params.PostID)
	if err != nil {
		return nil, fmt.Errorf("reading updated post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &post, nil
}
