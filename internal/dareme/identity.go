package dareme

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"dareme/internal/database/sqlc"
)

// Register creates a password account. It fails with ErrDuplicate, and
// writes nothing, when the username or email is already taken.
func (s *Service) Register(username, email, password, bio string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, fmt.Errorf("%w: username, email and password are required", ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.database.CreateUser(sqlc.InsertUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: sql.NullString{String: string(hash), Valid: true},
		Bio:          bio,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("registering %s: %w", username, err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", username)
	return user.ID, nil
}

// RegisterExternal creates an account backed by an external identity
// provider. Such accounts have no password hash and can never pass
// Authenticate.
func (s *Service) RegisterExternal(username, email, provider, externalID string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || provider == "" || externalID == "" {
		return 0, fmt.Errorf("%w: username, email, provider and external id are required", ErrInvalidArgument)
	}

	user, err := s.database.CreateUser(sqlc.InsertUserParams{
		Username:     username,
		Email:        email,
		AuthProvider: sql.NullString{String: provider, Valid: true},
		ExternalID:   sql.NullString{String: externalID, Valid: true},
		CreatedAt:    s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("registering %s: %w", username, err)
	}

	s.logger.Info("external user registered", "user_id", user.ID, "provider", provider)
	return user.ID, nil
}

// Authenticate returns the user id when password verifies for username.
// Every failure mode collapses into ErrInvalidCredentials.
func (s *Service) Authenticate(username, password string) (int64, error) {
	user, err := s.database.FindUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return 0, fmt.Errorf("finding user: %w", err)
	}
	if user == nil || !user.PasswordHash.Valid {
		return 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		s.logger.Debug("password mismatch", "user_id", user.ID)
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}

// SetPrivacy sets the account's private flag. Setting the current value
// again is a no-op.
func (s *Service) SetPrivacy(userID int64, isPrivate bool) error {
	if err := s.database.UpdateUserPrivacy(userID, isPrivate); err != nil {
		return fmt.Errorf("updating privacy: %w", err)
	}
	s.logger.Info("privacy updated", "user_id", userID, "private", isPrivate)
	return nil
}

// UsernameExists reports whether username is taken.
func (s *Service) UsernameExists(username string) (bool, error) {
	n, err := s.database.CountUsersByUsername(strings.TrimSpace(username))
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return n > 0, nil
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(userID int64) (*sqlc.User, error) {
	user, err := s.database.FindUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username.
func (s *Service) GetUserByUsername(username string) (*sqlc.User, error) {
	user, err := s.database.FindUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	return user, nil
}
