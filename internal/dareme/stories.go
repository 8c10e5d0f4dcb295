package dareme

import (
	"errors"
	"fmt"
	"time"

	"dareme/internal/database/sqlc"
)

// StoryLifetime is how long a story stays visible after it is posted.
const StoryLifetime = 24 * time.Hour

// CreateStory posts an ephemeral story that expires after StoryLifetime.
func (s *Service) CreateStory(userID int64, mediaPath, caption string) (int64, error) {
	if mediaPath == "" {
		return 0, fmt.Errorf("%w: media path is required", ErrInvalidArgument)
	}

	now := s.now()
	story, err := s.database.CreateStory(sqlc.InsertStoryParams{
		UserID:    userID,
		MediaPath: mediaPath,
		Caption:   caption,
		CreatedAt: now,
		ExpiresAt: now.Add(StoryLifetime),
	})
	if err != nil {
		return 0, fmt.Errorf("creating story: %w", err)
	}

	s.logger.Info("story created", "story_id", story.ID, "user_id", userID, "expires_at", story.ExpiresAt)
	return story.ID, nil
}

// ListActiveStories returns unexpired stories, newest first. A zero userID
// lists every user's stories. Expired rows are filtered, never deleted.
func (s *Service) ListActiveStories(userID int64) ([]*sqlc.Story, error) {
	stories, err := s.database.ListActiveStories(userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	return stories, nil
}

// ViewStory records that viewerID saw storyID. Viewing again is a no-op.
// Expired stories are reported as ErrNotFound.
func (s *Service) ViewStory(storyID, viewerID int64) error {
	now := s.now()
	story, err := s.database.FindStoryByID(storyID)
	if err != nil {
		return fmt.Errorf("finding story: %w", err)
	}
	if story == nil || !now.Before(story.ExpiresAt) {
		return fmt.Errorf("%w: story %d", ErrNotFound, storyID)
	}

	err = s.database.CreateStoryView(sqlc.InsertStoryViewParams{
		StoryID:  storyID,
		ViewerID: viewerID,
		ViewedAt: now,
	})
	if errors.Is(err, ErrDuplicate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("recording story view: %w", err)
	}

	s.logger.Debug("story viewed", "story_id", storyID, "viewer_id", viewerID)
	return nil
}

// StoryViewers lists who has seen a story, in viewing order.
func (s *Service) StoryViewers(storyID int64) ([]*sqlc.ListStoryViewersRow, error) {
	viewers, err := s.database.ListStoryViewers(storyID)
	if err != nil {
		return nil, fmt.Errorf("listing story viewers: %w", err)
	}
	return viewers, nil
}
