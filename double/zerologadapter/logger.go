// Package zerologadapter provides a zerolog implementation of the double.Logger
// interface for users who want structured double lifecycle logging without
// implementing the interface themselves.
package zerologadapter

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jakob-rzeppa/fnmock/double"
)

// Logger implements double.Logger on top of a zerolog.Logger.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates a new Logger writing through the given zerolog.Logger.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Debug logs a debug message with alternating key/value args.
func (l *Logger) Debug(msg string, args ...any) {
	l.emit(l.logger.Debug(), msg, args)
}

// Info logs an info message with alternating key/value args.
func (l *Logger) Info(msg string, args ...any) {
	l.emit(l.logger.Info(), msg, args)
}

// Warn logs a warning message with alternating key/value args.
func (l *Logger) Warn(msg string, args ...any) {
	l.emit(l.logger.Warn(), msg, args)
}

// Error logs an error message with alternating key/value args.
func (l *Logger) Error(msg string, args ...any) {
	l.emit(l.logger.Error(), msg, args)
}

// emit attaches args as fields, pairing them up the way log/slog does and
// tolerating a dangling final key.
func (l *Logger) emit(event *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}

		event = event.Interface(key, args[i+1])
	}

	if len(args)%2 != 0 {
		event = event.Interface("!BADKEY", args[len(args)-1])
	}

	event.Msg(msg)
}

// Ensure Logger implements double.Logger.
var _ double.Logger = (*Logger)(nil)
