package domain

import (
	"fmt"
	"time"
)

const (
	MinEnergyLevel = 1
	MaxEnergyLevel = 5
)

// ValidEnergyLevel reports whether level is within 1..5.
func ValidEnergyLevel(level int) bool {
	return level >= MinEnergyLevel && level <= MaxEnergyLevel
}

// Exercise is an immutable catalog entry.
type Exercise struct {
	ID          string
	Name        string
	MuscleGroup MuscleGroup
	Description string
}

// Set is one block of repetitions. Reps and Completed are edited in place
// while the workout is in progress.
type Set struct {
	Reps      int
	Completed bool
}

// WorkoutExercise pairs a catalog exercise with its sets. The number of
// sets is fixed when the workout is generated.
type WorkoutExercise struct {
	Exercise Exercise
	Sets     []Set
}

// Workout is the record of one training session.
type Workout struct {
	ID          string
	Date        time.Time
	EnergyLevel int
	Exercises   []WorkoutExercise
	Completed   bool
	AIGenerated bool
}

// TotalSets returns the number of sets across all exercises.
func (w *Workout) TotalSets() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// CompletedSets returns the number of sets flagged completed.
func (w *Workout) CompletedSets() int {
	n := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Completed {
				n++
			}
		}
	}
	return n
}

// TotalReps sums reps over completed sets only.
func (w *Workout) TotalReps() int {
	n := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Completed {
				n += s.Reps
			}
		}
	}
	return n
}

// MuscleGroups returns the distinct muscle groups in exercise order.
func (w *Workout) MuscleGroups() []MuscleGroup {
	seen := make(map[MuscleGroup]bool)
	var groups []MuscleGroup
	for _, ex := range w.Exercises {
		g := ex.Exercise.MuscleGroup
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	return groups
}

// IndexOfExercise returns the position of the exercise with the given
// catalog id, or -1.
func (w *Workout) IndexOfExercise(exerciseID string) int {
	for i, ex := range w.Exercises {
		if ex.Exercise.ID == exerciseID {
			return i
		}
	}
	return -1
}

// Validate checks the structural rules every generated workout must meet.
func (w *Workout) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("workout id is required")
	}
	if !ValidEnergyLevel(w.EnergyLevel) {
		return fmt.Errorf("energy level %d outside %d..%d", w.EnergyLevel, MinEnergyLevel, MaxEnergyLevel)
	}
	if len(w.Exercises) == 0 {
		return fmt.Errorf("workout %s has no exercises", w.ID)
	}
	for i, ex := range w.Exercises {
		if len(ex.Sets) == 0 {
			return fmt.Errorf("exercise %d (%s) has no sets", i, ex.Exercise.ID)
		}
		for j, s := range ex.Sets {
			if s.Reps < 0 {
				return fmt.Errorf("exercise %d set %d has negative reps", i, j)
			}
		}
	}
	return nil
}

// NewSets builds n sets with the same target reps.
func NewSets(n, reps int) []Set {
	sets := make([]Set, n)
	for i := range sets {
		sets[i] = Set{Reps: reps}
	}
	return sets
}
