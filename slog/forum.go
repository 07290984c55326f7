package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlmd"
)

// Ensure LoggingTokenSource implements urlmd.TokenSource.
var _ urlmd.TokenSource = (*LoggingTokenSource)(nil)

// LoggingTokenSource wraps a TokenSource with logging. Secrets and tokens
// are never logged.
type LoggingTokenSource struct {
	next   urlmd.TokenSource
	logger *slog.Logger
}

// NewLoggingTokenSource creates a new LoggingTokenSource.
func NewLoggingTokenSource(next urlmd.TokenSource, logger *slog.Logger) *LoggingTokenSource {
	return &LoggingTokenSource{next: next, logger: logger}
}

// Token logs the client id and outcome of the exchange.
func (s *LoggingTokenSource) Token(ctx context.Context, clientID, clientSecret string) (token string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("token",
			"client_id", clientID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Token(ctx, clientID, clientSecret)
}
