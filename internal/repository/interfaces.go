package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// WorkoutSummary is the list view of a stored workout.
type WorkoutSummary struct {
	ID            string
	Date          time.Time
	EnergyLevel   int
	AIGenerated   bool
	Completed     bool
	MuscleGroups  []domain.MuscleGroup
	ExerciseCount int
	TotalSets     int
	CompletedSets int
}

type WorkoutRepo interface {
	Create(ctx context.Context, w *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	ListRecent(ctx context.Context, limit int) ([]WorkoutSummary, error)
	LastTrained(ctx context.Context) (map[domain.MuscleGroup]time.Time, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
