package middleware

import (
	"context"
	"time"

	"lcu-scout/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const CycleIDKey contextKey = "cycle_id"

type ReportFunc func(ctx context.Context, q domain.QueryType) (*domain.Report, error)

// CycleID tags every report cycle with a fresh id and puts a logger
// carrying it into the context.
func CycleID(logger zerolog.Logger) func(ReportFunc) ReportFunc {
	return func(next ReportFunc) ReportFunc {
		return func(ctx context.Context, q domain.QueryType) (*domain.Report, error) {
			start := time.Now()
			cycleID := uuid.New().String()

			ctx = context.WithValue(ctx, CycleIDKey, cycleID)

			loggerWithID := logger.With().Str("cycle_id", cycleID).Logger()
			ctx = loggerWithID.WithContext(ctx)

			loggerWithID.Info().
				Str("query", q.String()).
				Msg("report started")

			report, err := next(ctx, q)

			duration := time.Since(start)
			event := loggerWithID.Info()
			if err != nil {
				event = loggerWithID.Error().Err(err)
			}
			if report != nil {
				event = event.Int("ranked", len(report.Ranked)).Int("skipped", len(report.Skipped))
			}
			event.
				Str("query", q.String()).
				Int64("duration_ms", duration.Milliseconds()).
				Dur("duration", duration).
				Msg("report completed")

			return report, err
		}
	}
}

func GetCycleID(ctx context.Context) string {
	if id, ok := ctx.Value(CycleIDKey).(string); ok {
		return id
	}
	return ""
}
