package testutil

import (
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/google/uuid"
)

// Workout options
type WorkoutOption func(*domain.Workout)

func WithDate(d time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.Date = d
	}
}

func WithEnergy(level int) WorkoutOption {
	return func(w *domain.Workout) {
		w.EnergyLevel = level
	}
}

func WithAIGenerated() WorkoutOption {
	return func(w *domain.Workout) {
		w.AIGenerated = true
	}
}

// WithExercise appends an exercise with sets x reps.
func WithExercise(ex domain.Exercise, sets, reps int) WorkoutOption {
	return func(w *domain.Workout) {
		w.Exercises = append(w.Exercises, domain.WorkoutExercise{
			Exercise: ex,
			Sets:     domain.NewSets(sets, reps),
		})
	}
}

// AllSetsDone marks every set completed and the workout finished. It only
// sees exercises added by earlier options.
func AllSetsDone() WorkoutOption {
	return func(w *domain.Workout) {
		for i := range w.Exercises {
			for j := range w.Exercises[i].Sets {
				w.Exercises[i].Sets[j].Completed = true
			}
		}
		w.Completed = true
	}
}

// Exercise returns a catalog-style exercise for group.
func Exercise(id, name string, group domain.MuscleGroup) domain.Exercise {
	return domain.Exercise{ID: id, Name: name, MuscleGroup: group, Description: name + " description"}
}

// NewTestWorkout builds a workout. Without WithExercise options it gets two
// chest exercises of 3x10.
func NewTestWorkout(opts ...WorkoutOption) *domain.Workout {
	w := &domain.Workout{
		ID:          "workout-" + uuid.New().String(),
		Date:        time.Now().UTC().Truncate(time.Millisecond),
		EnergyLevel: 3,
	}
	for _, opt := range opts {
		opt(w)
	}
	if len(w.Exercises) == 0 {
		WithExercise(Exercise("chest-1", "Dumbbell Bench Press", domain.MuscleChest), 3, 10)(w)
		WithExercise(Exercise("chest-2", "Dumbbell Flyes", domain.MuscleChest), 3, 10)(w)
	}
	return w
}

// NewCompletedWorkout is NewTestWorkout with every set done.
func NewCompletedWorkout(opts ...WorkoutOption) *domain.Workout {
	w := NewTestWorkout(opts...)
	AllSetsDone()(w)
	return w
}
