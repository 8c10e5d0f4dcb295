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

// Report operations

func (s *SQLiteDatabase) CreateReport(params sqlc.InsertReportParams) (*sqlc.Report, error) {
	ctx := context.Background()

	id, err := s.queries.InsertReport(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting report: %w", mapError(err))
	}

	report, err := s.queries.GetReportByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted report: %w", err)
	}
	return &report, nil
}

func (s *SQLiteDatabase) FindReportByID(id int64) (*sqlc.Report, error) {
	report, err := s.queries.GetReportByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding report by id: %w", err)
	}
	return &report, nil
}

func (s *SQLiteDatabase) ResolveReport(id int64, status string, resolvedAt time.Time) error {
	ctx := context.Background()

	rows, err := s.queries.UpdatePendingReportStatus(ctx, sqlc.UpdatePendingReportStatusParams{
		Status:     status,
		ResolvedAt: sql.NullTime{Time: resolvedAt, Valid: true},
		ID:         id,
	})
	if err != nil {
		return fmt.Errorf("updating report status: %w", mapError(err))
	}
	if rows > 0 {
		return nil
	}

	// Nothing pending matched: distinguish a missing report from a closed one.
	report, err := s.FindReportByID(id)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("%w: report %d", dareme.ErrNotFound, id)
	}
	return fmt.Errorf("%w: report %d is already %s", dareme.ErrInvalidState, id, report.Status)
}

func (s *SQLiteDatabase) ListReportsByStatus(status string) ([]*sqlc.Report, error) {
	reports, err := s.queries.ListReportsByStatus(context.Background(), status)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return toPointers(reports), nil
}

// Challenge operations

func (s *SQLiteDatabase) CreateChallenge(params sqlc.InsertChallengeParams) (*sqlc.Challenge, error) {
	ctx := context.Background()

	id, err := s.queries.InsertChallenge(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting challenge: %w", mapError(err))
	}

	challenge, err := s.queries.GetChallengeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted challenge: %w", err)
	}
	return &challenge, nil
}

func (s *SQLiteDatabase) FindChallengeByID(id int64) (*sqlc.Challenge, error) {
	challenge, err := s.queries.GetChallengeByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding challenge by id: %w", err)
	}
	return &challenge, nil
}

func (s *SQLiteDatabase) UpdateChallengeStatus(id int64, status string) error {
	rows, err := s.queries.UpdateChallengeStatus(context.Background(), sqlc.UpdateChallengeStatusParams{
		Status: status,
		ID:     id,
	})
	if err != nil {
		return fmt.Errorf("updating challenge status: %w", mapError(err))
	}
	return notFoundUnlessAffected(rows, "challenge", id)
}

func (s *SQLiteDatabase) ListChallengesByStatus(status string) ([]*sqlc.Challenge, error) {
	challenges, err := s.queries.ListChallengesByStatus(context.Background(), status)
	if err != nil {
		return nil, fmt.Errorf("listing challenges: %w", err)
	}
	return toPointers(challenges), nil
}

func (s *SQLiteDatabase) CreateSubmission(params sqlc.InsertChallengeSubmissionParams) (*sqlc.ChallengeSubmission, error) {
	ctx := context.Background()

	id, err := s.queries.InsertChallengeSubmission(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", mapError(err))
	}

	submission, err := s.queries.GetChallengeSubmissionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted submission: %w", err)
	}
	return &submission, nil
}

func (s *SQLiteDatabase) FindSubmissionByID(id int64) (*sqlc.ChallengeSubmission, error) {
	submission, err := s.queries.GetChallengeSubmissionByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding submission by id: %w", err)
	}
	return &submission, nil
}

func (s *SQLiteDatabase) ListSubmissions(challengeID int64) ([]*sqlc.ChallengeSubmission, error) {
	submissions, err := s.queries.ListChallengeSubmissions(context.Background(), challengeID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	return toPointers(submissions), nil
}

func (s *SQLiteDatabase) CreateSubmissionVote(params sqlc.InsertChallengeVoteParams) (*sqlc.ChallengeSubmission, error) {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.queries.WithTx(tx)

	if _, err := qtx.InsertChallengeVote(ctx, params); err != nil {
		return nil, fmt.Errorf("inserting submission vote: %w", mapError(err))
	}

	if err := qtx.IncrementSubmissionVotes(ctx, params.SubmissionID); err != nil {
		return nil, fmt.Errorf("incrementing vote count: %w", err)
	}

	submission, err := qtx.GetChallengeSubmissionByID(ctx, params.SubmissionID)
	if err != nil {
		return nil, fmt.Errorf("reading updated submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &submission, nil
}
