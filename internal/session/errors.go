package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition indicates a transition was requested from a phase
	// that does not accept it. The session state is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrBusy indicates a transition was attempted while an AI request was
	// outstanding. Busy errors also match ErrInvalidTransition.
	ErrBusy = errors.New("session busy")

	// ErrOutOfRange indicates an index or value argument outside its valid
	// range. It signals a caller bug; nothing is mutated.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotFound indicates an exercise id that is not part of the workout.
	ErrNotFound = errors.New("exercise not found")

	// ErrAIRecommendationFailed wraps any failure of the AI collaborator.
	// It is reported on the fallback outcome, never returned as an error.
	ErrAIRecommendationFailed = errors.New("ai recommendation failed")
)

// InvalidTransitionError records which transition was rejected and from
// which phase.
type InvalidTransitionError struct {
	Transition string
	Phase      Phase
	Busy       bool
}

func (e *InvalidTransitionError) Error() string {
	if e.Busy {
		return fmt.Sprintf("%s: %s rejected while an AI request is in flight (phase %s)", ErrBusy, e.Transition, e.Phase)
	}
	return fmt.Sprintf("%s: %s not allowed in phase %s", ErrInvalidTransition, e.Transition, e.Phase)
}

func (e *InvalidTransitionError) Is(target error) bool {
	if target == ErrInvalidTransition {
		return true
	}
	return e.Busy && target == ErrBusy
}
