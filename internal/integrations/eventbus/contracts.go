package eventbus

import "errors"

var (
	// ErrConnect is returned when the broker cannot be reached or set up
	ErrConnect = errors.New("eventbus: connect failed")

	// ErrPublish is returned when an event cannot be published
	ErrPublish = errors.New("eventbus: publish failed")
)

// Logger interface used by the publisher
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
