// Package session holds the workout flow state machine: the single active
// session, its phases, and the rules applied to the in-progress workout.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
)

// DefaultAITimeout bounds the AI call before the standard fallback runs.
const DefaultAITimeout = 30 * time.Second

// AIOutcome describes how SubmitAIForm resolved.
type AIOutcome struct {
	Workout  *domain.Workout
	FellBack bool
	// Cause is set when FellBack is true and wraps ErrAIRecommendationFailed.
	Cause error
}

// Notice is the message shown to the user after a fallback.
func (o *AIOutcome) Notice() string {
	if o == nil || !o.FellBack {
		return ""
	}
	return "Failed to generate AI workout. Using standard workout instead."
}

// Controller drives one workout session. Transitions are serialized by a
// mutex; the AI request in SubmitAIForm runs without holding it and marks
// the session busy until it returns.
type Controller struct {
	mu      sync.Mutex
	state   State
	loading bool

	generator   Generator
	recommender Recommender
	credentials CredentialStore
	store       WorkoutStore

	aiTimeout time.Duration
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithAITimeout overrides DefaultAITimeout. Non-positive values are ignored.
func WithAITimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.aiTimeout = d
		}
	}
}

// WithLogger sets the logger used for fallback and persistence events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController starts a session in the energy phase.
func NewController(gen Generator, rec Recommender, creds CredentialStore, store WorkoutStore, opts ...Option) *Controller {
	c := &Controller{
		state:       EnergyState{},
		generator:   gen,
		recommender: rec,
		credentials: creds,
		store:       store,
		aiTimeout:   DefaultAITimeout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current phase value. Workouts inside it are shared
// with the controller and must be treated as read-only by callers.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase returns the current phase tag.
func (c *Controller) Phase() Phase {
	return c.State().Phase()
}

// Loading reports whether an AI request is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// guard must be called with c.mu held.
func (c *Controller) guard(transition string, want ...Phase) error {
	if c.loading {
		return &InvalidTransitionError{Transition: transition, Phase: c.state.Phase(), Busy: true}
	}
	if len(want) == 0 {
		return nil
	}
	for _, p := range want {
		if c.state.Phase() == p {
			return nil
		}
	}
	return &InvalidTransitionError{Transition: transition, Phase: c.state.Phase()}
}

// SelectEnergy records the energy level and moves to method selection.
func (c *Controller) SelectEnergy(level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("selectEnergy", PhaseEnergy); err != nil {
		return err
	}
	if !domain.ValidEnergyLevel(level) {
		return fmt.Errorf("%w: energy level %d outside %d..%d", ErrOutOfRange, level, domain.MinEnergyLevel, domain.MaxEnergyLevel)
	}
	c.state = MethodState{EnergyLevel: level}
	return nil
}

// SelectMethod generates a standard workout, or routes the AI path to the
// credential or prompt screen.
func (c *Controller) SelectMethod(ctx context.Context, useAI bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("selectMethod", PhaseMethod); err != nil {
		return err
	}
	level := c.state.(MethodState).EnergyLevel

	if !useAI {
		c.state = ExercisesState{Workout: c.generator.Generate(ctx, level)}
		return nil
	}
	if c.credentials != nil && c.credentials.Has(ctx) {
		c.state = AIFormState{EnergyLevel: level}
	} else {
		c.state = AISetupState{EnergyLevel: level}
	}
	return nil
}

// ConfirmCredential continues to the AI prompt once the credential has
// been stored.
func (c *Controller) ConfirmCredential() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("confirmCredential", PhaseAISetup); err != nil {
		return err
	}
	c.state = AIFormState{EnergyLevel: c.state.(AISetupState).EnergyLevel}
	return nil
}

// SubmitAIForm requests an AI workout. Any AI failure falls back to a
// standard workout; the only errors returned are transition rejections.
func (c *Controller) SubmitAIForm(ctx context.Context, prompt domain.AIWorkoutPrompt) (*AIOutcome, error) {
	c.mu.Lock()
	if err := c.guard("submitAiForm", PhaseAIForm); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	level := c.state.(AIFormState).EnergyLevel
	c.loading = true
	c.mu.Unlock()

	workout, aiErr := c.recommend(ctx, prompt, level)

	outcome := &AIOutcome{Workout: workout}
	if aiErr != nil {
		outcome.FellBack = true
		outcome.Cause = fmt.Errorf("%w: %w", ErrAIRecommendationFailed, aiErr)
		outcome.Workout = c.generator.Generate(ctx, level)
		c.logger.WarnContext(ctx, "ai_recommendation_fallback",
			"energy_level", level,
			"error", aiErr.Error(),
		)
	}

	c.mu.Lock()
	c.loading = false
	c.state = ExercisesState{Workout: outcome.Workout}
	c.mu.Unlock()

	return outcome, nil
}

func (c *Controller) recommend(ctx context.Context, prompt domain.AIWorkoutPrompt, level int) (*domain.Workout, error) {
	if c.recommender == nil {
		return nil, errors.New("ai recommender not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, c.aiTimeout)
	defer cancel()

	w, err := c.recommender.Recommend(ctx, prompt, level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.New("ai recommender returned no workout")
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("ai workout rejected: %w", err)
	}
	return w, nil
}

// SelectExercise starts the rep counter at the chosen exercise.
func (c *Controller) SelectExercise(exerciseID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("selectExercise", PhaseExercises); err != nil {
		return err
	}
	w := c.state.(ExercisesState).Workout
	idx := w.IndexOfExercise(exerciseID)
	if idx < 0 {
		return fmt.Errorf("%w: %q in workout %s", ErrNotFound, exerciseID, w.ID)
	}
	c.state = CounterState{Workout: w, ExerciseIndex: idx}
	return nil
}

// counterSet resolves setIndex within the current exercise. Must be called
// with c.mu held and the state in the counter phase.
func (c *Controller) counterSet(setIndex int) (*domain.Set, error) {
	st := c.state.(CounterState)
	sets := st.Workout.Exercises[st.ExerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return nil, fmt.Errorf("%w: set index %d (exercise has %d sets)", ErrOutOfRange, setIndex, len(sets))
	}
	return &sets[setIndex], nil
}

// UpdateReps overwrites the reps of a set in the current exercise.
func (c *Controller) UpdateReps(setIndex, reps int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("updateReps", PhaseCounter); err != nil {
		return err
	}
	if reps < 0 {
		return fmt.Errorf("%w: reps %d", ErrOutOfRange, reps)
	}
	set, err := c.counterSet(setIndex)
	if err != nil {
		return err
	}
	set.Reps = reps
	return nil
}

// CompleteSet flags a set of the current exercise as done. Calling it again
// is harmless.
func (c *Controller) CompleteSet(setIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("completeSet", PhaseCounter); err != nil {
		return err
	}
	set, err := c.counterSet(setIndex)
	if err != nil {
		return err
	}
	set.Completed = true
	return nil
}

// Advance moves to the next set, then the next exercise, and finally
// completes and persists the workout.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("advance", PhaseCounter); err != nil {
		return err
	}
	st := c.state.(CounterState)

	switch {
	case !st.IsLastSet():
		st.SetIndex++
		c.state = st
		return nil
	case !st.IsLastExercise():
		c.state = CounterState{Workout: st.Workout, ExerciseIndex: st.ExerciseIndex + 1}
		return nil
	}

	st.Workout.Completed = true
	if c.store != nil {
		if err := c.store.Persist(ctx, st.Workout); err != nil {
			st.Workout.Completed = false
			c.logger.ErrorContext(ctx, "workout_persist_failed", "workout_id", st.Workout.ID, "error", err.Error())
			return fmt.Errorf("persisting workout %s: %w", st.Workout.ID, err)
		}
	}
	c.logger.InfoContext(ctx, "workout_completed",
		"workout_id", st.Workout.ID,
		"sets", st.Workout.TotalSets(),
		"ai_generated", st.Workout.AIGenerated,
	)
	c.state = CompleteState{Workout: st.Workout}
	return nil
}

// Restart drops the current session and returns to energy selection.
func (c *Controller) Restart() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard("restart"); err != nil {
		return err
	}
	c.state = EnergyState{}
	return nil
}
