// Package generation builds standard, rule-based workouts from the catalog.
package generation

import (
	"context"
	"time"

	"github.com/alexanderramin/liftoff/internal/catalog"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/google/uuid"
)

// Generator produces a workout for an energy level. It never fails: the
// catalog is validated up front and the rotation always yields a group.
type Generator struct {
	catalog  *catalog.Catalog
	rotation Rotation
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for the workout date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(c *catalog.Catalog, rotation Rotation, opts ...Option) *Generator {
	g := &Generator{
		catalog:  c,
		rotation: rotation,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetsForEnergy returns the number of sets per exercise at a given level.
func SetsForEnergy(level int) int {
	switch {
	case level >= 5:
		return 4
	case level >= 3:
		return 3
	default:
		return 2
	}
}

// RepsForEnergy returns the target reps per set at a given level.
func RepsForEnergy(level int) int {
	return 6 + 2*level
}

// Generate builds a workout for the least recently trained muscle group.
// Out-of-range levels are clamped so the result is always well formed.
func (g *Generator) Generate(ctx context.Context, energyLevel int) *domain.Workout {
	level := domain.ClampInt(energyLevel, domain.MinEnergyLevel, domain.MaxEnergyLevel)
	group := g.rotation.Next(ctx)

	sets, reps := SetsForEnergy(level), RepsForEnergy(level)
	exercises := g.catalog.Exercises(group)
	items := make([]domain.WorkoutExercise, 0, len(exercises))
	for _, ex := range exercises {
		items = append(items, domain.WorkoutExercise{
			Exercise: ex,
			Sets:     domain.NewSets(sets, reps),
		})
	}

	return &domain.Workout{
		ID:          NewWorkoutID(),
		Date:        g.now().UTC(),
		EnergyLevel: level,
		Exercises:   items,
	}
}

// NewWorkoutID returns a fresh workout identifier.
func NewWorkoutID() string {
	return "workout-" + uuid.New().String()
}
