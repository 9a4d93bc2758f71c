package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/repository"
)

var (
	// ErrIncompleteWorkout rejects persisting a workout that was not finished.
	ErrIncompleteWorkout = errors.New("workout is not completed")

	// ErrBlankCredential rejects saving an empty API key.
	ErrBlankCredential = errors.New("credential must not be blank")
)

// WorkoutService is the workout store: completed workouts are appended
// once and read back for history and rotation.
type WorkoutService interface {
	Persist(ctx context.Context, w *domain.Workout) error
	Get(ctx context.Context, id string) (*domain.Workout, error)
	ListRecent(ctx context.Context, limit int) ([]repository.WorkoutSummary, error)
	LastTrained(ctx context.Context) (map[domain.MuscleGroup]time.Time, error)
}

// CredentialSource says where the active API key comes from.
type CredentialSource string

const (
	CredentialNone   CredentialSource = "none"
	CredentialEnv    CredentialSource = "env"
	CredentialStored CredentialSource = "stored"
)

// CredentialService stores the AI provider key.
type CredentialService interface {
	Has(ctx context.Context) bool
	Save(ctx context.Context, credential string) error
	APIKey(ctx context.Context) (string, error)
	Source(ctx context.Context) CredentialSource
	Clear(ctx context.Context) error
}
