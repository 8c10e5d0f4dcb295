package dareme

import (
	"fmt"
	"strings"
	"time"

	"dareme/internal/database/sqlc"
)

// Challenge statuses.
const (
	ChallengeActive = "active"
	ChallengeClosed = "closed"
)

// CreateChallenge opens a challenge that nominally ends durationDays from
// now. Reaching the end date does not close it; only CloseChallenge does.
func (s *Service) CreateChallenge(creatorID int64, title, description string, rewardPoints int64, durationDays int) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("%w: challenge title is required", ErrInvalidArgument)
	}
	if durationDays <= 0 || rewardPoints < 0 {
		return 0, fmt.Errorf("%w: duration must be positive and reward non-negative", ErrInvalidArgument)
	}

	now := s.now()
	challenge, err := s.database.CreateChallenge(sqlc.InsertChallengeParams{
		CreatorID:    creatorID,
		Title:        title,
		Description:  description,
		RewardPoints: rewardPoints,
		Status:       ChallengeActive,
		CreatedAt:    now,
		EndsAt:       now.Add(time.Duration(durationDays) * 24 * time.Hour),
	})
	if err != nil {
		return 0, fmt.Errorf("creating challenge: %w", err)
	}

	s.logger.Info("challenge created", "challenge_id", challenge.ID, "creator_id", creatorID, "ends_at", challenge.EndsAt)
	return challenge.ID, nil
}

// GetChallenge returns the challenge with the given id.
func (s *Service) GetChallenge(challengeID int64) (*sqlc.Challenge, error) {
	challenge, err := s.database.FindChallengeByID(challengeID)
	if err != nil {
		return nil, fmt.Errorf("finding challenge: %w", err)
	}
	if challenge == nil {
		return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, challengeID)
	}
	return challenge, nil
}

// CloseChallenge stops a challenge from accepting submissions.
func (s *Service) CloseChallenge(challengeID int64) error {
	challenge, err := s.GetChallenge(challengeID)
	if err != nil {
		return err
	}
	if challenge.Status == ChallengeClosed {
		return fmt.Errorf("%w: challenge %d is already closed", ErrInvalidState, challengeID)
	}

	if err := s.database.UpdateChallengeStatus(challengeID, ChallengeClosed); err != nil {
		return fmt.Errorf("closing challenge: %w", err)
	}

	s.logger.Info("challenge closed", "challenge_id", challengeID)
	return nil
}

// ListChallenges returns challenges in the given status, newest first.
func (s *Service) ListChallenges(status string) ([]*sqlc.Challenge, error) {
	challenges, err := s.database.ListChallengesByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("listing challenges: %w", err)
	}
	return challenges, nil
}

// Submit enters userID's media into an active challenge.
func (s *Service) Submit(challengeID, userID int64, mediaPath, caption string) (int64, error) {
	if mediaPath == "" {
		return 0, fmt.Errorf("%w: media path is required", ErrInvalidArgument)
	}

	challenge, err := s.GetChallenge(challengeID)
	if err != nil {
		return 0, err
	}
	if challenge.Status != ChallengeActive {
		return 0, fmt.Errorf("%w: challenge %d is %s", ErrInvalidState, challengeID, challenge.Status)
	}

	submission, err := s.database.CreateSubmission(sqlc.InsertChallengeSubmissionParams{
		ChallengeID: challengeID,
		UserID:      userID,
		MediaPath:   mediaPath,
		Caption:     caption,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("submitting to challenge: %w", err)
	}

	s.logger.Info("challenge submission created", "submission_id", submission.ID, "challenge_id", challengeID, "user_id", userID)
	return submission.ID, nil
}

// VoteSubmission counts one vote by userID for a submission. Voting twice
// returns ErrDuplicate.
func (s *Service) VoteSubmission(submissionID, userID int64) (*sqlc.ChallengeSubmission, error) {
	submission, err := s.database.CreateSubmissionVote(sqlc.InsertChallengeVoteParams{
		SubmissionID: submissionID,
		UserID:       userID,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("voting on submission %d: %w", submissionID, err)
	}

	s.logger.Info("submission vote recorded", "submission_id", submissionID, "user_id", userID, "votes", submission.VoteCount)
	return submission, nil
}

// ListSubmissions returns a challenge's entries, most votes first.
func (s *Service) ListSubmissions(challengeID int64) ([]*sqlc.ChallengeSubmission, error) {
	submissions, err := s.database.ListSubmissions(challengeID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	return submissions, nil
}
