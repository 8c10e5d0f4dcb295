package dareme

import "errors"

// Sentinel errors returned by the service and storage layers. Callers
// match them with errors.Is; the wrapped message carries the detail.
var (
	ErrDuplicate          = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidState       = errors.New("invalid state")
	ErrNotAuthorized      = errors.New("not authorized")
)
