package dareme

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"dareme/internal/database/sqlc"
)

// DefaultThreadLimit bounds GetThread when the caller passes no limit.
const DefaultThreadLimit = 50

// Conversation summarises the exchange with one correspondent.
type Conversation struct {
	OtherUserID   int64
	OtherUsername string
	LastMessage   string
	LastMessageAt time.Time
	UnreadCount   int64
}

// SendMessage delivers an unread direct message. mediaPath is optional but
// a message needs either content or media.
func (s *Service) SendMessage(senderID, receiverID int64, content, mediaPath string) (int64, error) {
	if strings.TrimSpace(content) == "" && mediaPath == "" {
		return 0, fmt.Errorf("%w: message needs content or media", ErrInvalidArgument)
	}

	msg, err := s.database.CreateMessage(sqlc.InsertMessageParams{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		MediaPath:  sql.NullString{String: mediaPath, Valid: mediaPath != ""},
		CreatedAt:  s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("sending message: %w", err)
	}

	s.logger.Info("message sent", "message_id", msg.ID, "sender_id", senderID, "receiver_id", receiverID)
	return msg.ID, nil
}

// ListConversations returns one summary per correspondent of userID, most
// recent first.
func (s *Service) ListConversations(userID int64) ([]*Conversation, error) {
	rows, err := s.database.ListConversations(userID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}

	conversations := make([]*Conversation, len(rows))
	for i, row := range rows {
		conversations[i] = &Conversation{
			OtherUserID:   row.OtherUserID,
			OtherUsername: row.OtherUsername,
			LastMessage:   row.LastMessage,
			LastMessageAt: row.LastMessageAt,
			UnreadCount:   row.UnreadCount,
		}
	}
	return conversations, nil
}

// GetThread returns the latest limit messages between two users in
// chronological order.
func (s *Service) GetThread(userID, otherUserID int64, limit int) ([]*sqlc.Message, error) {
	if limit <= 0 {
		limit = DefaultThreadLimit
	}

	messages, err := s.database.ListThread(userID, otherUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing thread: %w", err)
	}

	// Reverse to oldest first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// MarkRead flags every unread message from fromUserID to userID as read and
// returns how many changed.
func (s *Service) MarkRead(userID, fromUserID int64) (int64, error) {
	n, err := s.database.MarkMessagesRead(userID, fromUserID)
	if err != nil {
		return 0, fmt.Errorf("marking messages read: %w", err)
	}
	s.logger.Debug("messages marked read", "user_id", userID, "from_user_id", fromUserID, "count", n)
	return n, nil
}

// UnreadCount returns how many messages userID has not read.
func (s *Service) UnreadCount(userID int64) (int64, error) {
	n, err := s.database.CountUnreadMessages(userID)
	if err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return n, nil
}
