// Package health reports whether the service can reach its database.
package health

import (
	"context"
	"log/slog"
	"time"
)

// Pinger is implemented by stores that can check their connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a health Service. Each check is bounded by timeout.
func New(db Pinger, timeout time.Duration, logger *slog.Logger) *Service {
	return &Service{db: db, timeout: timeout, logger: logger}
}

// CheckDB pings the database.
func (s *Service) CheckDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error("CheckDB failed", "error", err)
		return err
	}
	return nil
}
