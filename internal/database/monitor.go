package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewCommandLogger returns a command monitor that logs every command at
// debug and any command slower than slowThreshold at warn. A zero
// threshold disables the slow-command warning.
func NewCommandLogger(logger *zerolog.Logger, slowThreshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			logger.Debug().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			logFinished(logger, e.CommandName, e.RequestID, e.Duration, slowThreshold).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Error().
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("mongo command failed")
		},
	}
}

func logFinished(logger *zerolog.Logger, command string, requestID int64, took, slowThreshold time.Duration) *zerolog.Event {
	var e *zerolog.Event
	if slowThreshold > 0 && took > slowThreshold {
		e = logger.Warn().Bool("slow", true)
	} else {
		e = logger.Debug()
	}

	return e.
		Str("command", command).
		Int64("request_id", requestID).
		Dur("duration", took)
}
