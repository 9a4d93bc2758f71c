package session

import "github.com/alexanderramin/liftoff/internal/domain"

// Phase names one screen of the workout flow.
type Phase int

const (
	PhaseEnergy Phase = iota
	PhaseMethod
	PhaseAISetup
	PhaseAIForm
	PhaseExercises
	PhaseCounter
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseEnergy:
		return "energy"
	case PhaseMethod:
		return "method"
	case PhaseAISetup:
		return "aiSetup"
	case PhaseAIForm:
		return "aiForm"
	case PhaseExercises:
		return "exercises"
	case PhaseCounter:
		return "counter"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is the session's current phase together with the data that phase
// needs. It is implemented only by the phase structs in this file.
type State interface {
	Phase() Phase
	sealed()
}

type EnergyState struct{}

type MethodState struct {
	EnergyLevel int
}

type AISetupState struct {
	EnergyLevel int
}

type AIFormState struct {
	EnergyLevel int
}

type ExercisesState struct {
	Workout *domain.Workout
}

// CounterState is the set currently being performed. ExerciseIndex and
// SetIndex always address an existing set of Workout.
type CounterState struct {
	Workout       *domain.Workout
	ExerciseIndex int
	SetIndex      int
}

type CompleteState struct {
	Workout *domain.Workout
}

func (EnergyState) Phase() Phase    { return PhaseEnergy }
func (MethodState) Phase() Phase    { return PhaseMethod }
func (AISetupState) Phase() Phase   { return PhaseAISetup }
func (AIFormState) Phase() Phase    { return PhaseAIForm }
func (ExercisesState) Phase() Phase { return PhaseExercises }
func (CounterState) Phase() Phase   { return PhaseCounter }
func (CompleteState) Phase() Phase  { return PhaseComplete }

func (EnergyState) sealed()    {}
func (MethodState) sealed()    {}
func (AISetupState) sealed()   {}
func (AIFormState) sealed()    {}
func (ExercisesState) sealed() {}
func (CounterState) sealed()   {}
func (CompleteState) sealed()  {}

// Exercise returns the exercise being performed.
func (s CounterState) Exercise() domain.WorkoutExercise {
	return s.Workout.Exercises[s.ExerciseIndex]
}

// Set returns the set being performed.
func (s CounterState) Set() domain.Set {
	return s.Workout.Exercises[s.ExerciseIndex].Sets[s.SetIndex]
}

// IsLastSet reports whether the current set is the last of its exercise.
func (s CounterState) IsLastSet() bool {
	return s.SetIndex == len(s.Workout.Exercises[s.ExerciseIndex].Sets)-1
}

// IsLastExercise reports whether the current exercise is the last one.
func (s CounterState) IsLastExercise() bool {
	return s.ExerciseIndex == len(s.Workout.Exercises)-1
}

// WorkoutOf returns the workout carried by s, or nil for phases before
// generation.
func WorkoutOf(s State) *domain.Workout {
	switch st := s.(type) {
	case ExercisesState:
		return st.Workout
	case CounterState:
		return st.Workout
	case CompleteState:
		return st.Workout
	case EnergyState, MethodState, AISetupState, AIFormState:
		return nil
	default:
		return nil
	}
}

// EnergyLevelOf returns the energy level carried by s. Phases that hold a
// workout report the workout's level; the energy phase reports 0.
func EnergyLevelOf(s State) int {
	switch st := s.(type) {
	case MethodState:
		return st.EnergyLevel
	case AISetupState:
		return st.EnergyLevel
	case AIFormState:
		return st.EnergyLevel
	case ExercisesState, CounterState, CompleteState:
		return WorkoutOf(st).EnergyLevel
	default:
		return 0
	}
}
