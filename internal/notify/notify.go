package notify

import (
	"context"
	"log/slog"

	"github.com/fjod/go_storefront/internal/domain"
)

// Sink receives user-facing notifications. Delivery is fire-and-forget: a sink never fails the caller.
type Sink interface {
	Notify(ctx context.Context, sessionID string, n domain.Notification)
}

type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(ctx context.Context, sessionID string, n domain.Notification) {
	level := slog.LevelInfo
	if n.Severity == domain.SeverityDestructive {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "notification",
		"session_id", sessionID,
		"title", n.Title,
		"description", n.Description,
		"severity", string(n.Severity),
	)
}

// Multi fans a notification out to every sink in order.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, sessionID string, n domain.Notification) {
	for _, s := range m {
		s.Notify(ctx, sessionID, n)
	}
}

// Discard drops everything.
type Discard struct{}

func (Discard) Notify(context.Context, string, domain.Notification) {}
