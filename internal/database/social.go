package database

import (
	"context"
	"fmt"

	"dareme/internal/database/sqlc"
)

// Follow operations

func (s *SQLiteDatabase) CreateFollow(params sqlc.InsertFollowParams) (int64, error) {
	id, err := s.queries.InsertFollow(context.Background(), params)
	if err != nil {
		return 0, fmt.Errorf("inserting follow: %w", mapError(err))
	}
	return id, nil
}

func (s *SQLiteDatabase) DeleteFollow(userID, followerID int64) error {
	rows, err := s.queries.DeleteFollow(context.Background(), sqlc.DeleteFollowParams{
		UserID:     userID,
		FollowerID: followerID,
	})
	if err != nil {
		return fmt.Errorf("deleting follow: %w", err)
	}
	return notFoundUnlessAffected(rows, "follow of user", userID)
}

func (s *SQLiteDatabase) CountFollowEdges(userID, followerID int64) (int64, error) {
	n, err := s.queries.CountFollowEdges(context.Background(), sqlc.CountFollowEdgesParams{
		UserID:     userID,
		FollowerID: followerID,
	})
	if err != nil {
		return 0, fmt.Errorf("counting follow edges: %w", err)
	}
	return n, nil
}

func (s *SQLiteDatabase) CountFollowers(userID int64) (int64, error) {
	n, err := s.queries.CountFollowers(context.Background(), userID)
	if err != nil {
		return 0, fmt.Errorf("counting followers: %w", err)
	}
	return n, nil
}

func (s *SQLiteDatabase) ListFollowers(userID int64) ([]*sqlc.User, error) {
	users, err := s.queries.ListFollowers(context.Background(), userID)
	if err != nil {
		return nil, fmt.Errorf("listing followers: %w", err)
	}
	return toPointers(users), nil
}

func (s *SQLiteDatabase) ListFollowing(followerID int64) ([]*sqlc.User, error) {
	users, err := s.queries.ListFollowing(context.Background(), followerID)
	if err != nil {
		return nil, fmt.Errorf("listing following: %w", err)
	}
	return toPointers(users), nil
}

// Message operations

func (s *SQLiteDatabase) CreateMessage(params sqlc.InsertMessageParams) (*sqlc.Message, error) {
	ctx := context.Background()

	id, err := s.queries.InsertMessage(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", mapError(err))
	}

	msg, err := s.queries.GetMessageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading inserted message: %w", err)
	}
	return &msg, nil
}

func (s *SQLiteDatabase) ListThread(userID, otherUserID int64, limit int) ([]*sqlc.Message, error) {
	messages, err := s.queries.ListThread(context.Background(), sqlc.ListThreadParams{
		UserID:      userID,
		OtherUserID: otherUserID,
		Limit:       int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("listing thread: %w", err)
	}
	return toPointers(messages), nil
}

func (s *SQLiteDatabase) MarkMessagesRead(receiverID, senderID int64) (int64, error) {
	n, err := s.queries.MarkMessagesRead(context.Background(), sqlc.MarkMessagesReadParams{
		ReceiverID: receiverID,
		SenderID:   senderID,
	})
	if err != nil {
		return 0, fmt.Errorf("marking messages read: %w", err)
	}
	return n, nil
}

func (s *SQLiteDatabase) CountUnreadMessages(receiverID int64) (int64, error) {
	n, err := s.queries.CountUnreadMessages(context.Background(), receiverID)
	if err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return n, nil
}

func (s *SQLiteDatabase) ListConversations(userID int64) ([]*sqlc.ListConversationsRow, error) {
	rows, err := s.queries.ListConversations(context.Background(), userID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return toPointers(rows), nil
}
