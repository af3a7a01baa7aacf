package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/linskybing/support-tracker/internal/application"
)

// StartSessionCleanup removes expired sessions once on startup and then every
// interval until ctx is cancelled.
func StartSessionCleanup(ctx context.Context, auth *application.AuthService, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		slog.Info("starting session cleanup task", "interval", interval.String())

		// Run immediately on startup
		purgeSessions(ctx, auth)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purgeSessions(ctx, auth)
			}
		}
	}()
}

func purgeSessions(ctx context.Context, auth *application.AuthService) {
	n, err := auth.PurgeExpiredSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("failed to purge expired sessions", "error", err)
		}
		return
	}
	if n > 0 {
		slog.Info("expired sessions purged", "count", n)
	}
}
