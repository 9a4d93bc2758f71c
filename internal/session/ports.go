package session

import (
	"context"

	"github.com/alexanderramin/liftoff/internal/domain"
)

// Generator builds a standard workout. It must not fail.
type Generator interface {
	Generate(ctx context.Context, energyLevel int) *domain.Workout
}

// Recommender asks the AI collaborator for a workout.
type Recommender interface {
	Recommend(ctx context.Context, prompt domain.AIWorkoutPrompt, energyLevel int) (*domain.Workout, error)
}

// CredentialStore reports whether an AI credential is available.
type CredentialStore interface {
	Has(ctx context.Context) bool
	Save(ctx context.Context, credential string) error
}

// WorkoutStore records finished workouts. Persist is called once per
// completed session.
type WorkoutStore interface {
	Persist(ctx context.Context, w *domain.Workout) error
}
