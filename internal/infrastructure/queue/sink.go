package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/ports"
)

// LogSink delivers operator notifications to the structured log. It stands in
// for an email or chat integration; operators tail the log stream.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, n ports.NotificationInput) error {
	s.log.Info().
		Str("kind", n.Kind).
		Str("reference", n.Reference).
		Str("email", n.Email).
		Str("summary", n.Summary).
		Msg("operator notification")
	return nil
}
