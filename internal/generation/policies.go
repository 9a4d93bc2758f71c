package generation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
)

// Rotation decides which muscle group the next standard workout trains.
type Rotation interface {
	Next(ctx context.Context) domain.MuscleGroup
}

// HistorySource reports when each muscle group was last trained.
// Groups never trained are absent from the map.
type HistorySource interface {
	LastTrained(ctx context.Context) (map[domain.MuscleGroup]time.Time, error)
}

// LeastRecentRotation picks the muscle group that has gone longest without
// a completed workout. Untrained groups win, in canonical order.
type LeastRecentRotation struct {
	history HistorySource
	logger  *slog.Logger
}

// NewLeastRecentRotation builds the rotation over a history source.
// A nil logger discards warnings.
func NewLeastRecentRotation(history HistorySource, logger *slog.Logger) *LeastRecentRotation {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LeastRecentRotation{history: history, logger: logger}
}

func (r *LeastRecentRotation) Next(ctx context.Context) domain.MuscleGroup {
	last, err := r.history.LastTrained(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "rotation_history_unavailable", "error", err.Error())
		return domain.MuscleGroups[0]
	}
	return LeastRecent(last)
}

// LeastRecent applies the rotation rule to a last-trained map.
func LeastRecent(last map[domain.MuscleGroup]time.Time) domain.MuscleGroup {
	pick := domain.MuscleGroups[0]
	var pickAt time.Time
	for i, g := range domain.MuscleGroups {
		at, trained := last[g]
		if !trained {
			return g
		}
		if i == 0 || at.Before(pickAt) {
			pick, pickAt = g, at
		}
	}
	return pick
}

// FixedRotation always returns the same group.
type FixedRotation domain.MuscleGroup

func (f FixedRotation) Next(context.Context) domain.MuscleGroup { return domain.MuscleGroup(f) }
