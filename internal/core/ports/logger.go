// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
