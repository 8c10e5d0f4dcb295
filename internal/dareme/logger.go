package dareme

// Logger is the slog-shaped sink the service reports domain events to.
// args alternate key, value.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
