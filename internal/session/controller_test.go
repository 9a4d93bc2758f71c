package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/liftoff/internal/catalog"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── collaborators ────────────────────────────────────────────────────────────

type recordingStore struct {
	mu    sync.Mutex
	saved []*domain.Workout
	err   error
}

func (s *recordingStore) Persist(_ context.Context, w *domain.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, w)
	return nil
}

func (s *recordingStore) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakeCredentials struct {
	has   bool
	saved string
}

func (f *fakeCredentials) Has(context.Context) bool { return f.has }

func (f *fakeCredentials) Save(_ context.Context, cred string) error {
	f.saved = cred
	f.has = true
	return nil
}

type recommenderFunc func(ctx context.Context, p domain.AIWorkoutPrompt, level int) (*domain.Workout, error)

func (f recommenderFunc) Recommend(ctx context.Context, p domain.AIWorkoutPrompt, level int) (*domain.Workout, error) {
	return f(ctx, p, level)
}

var errNetwork = errors.New("network unreachable")

func failingRecommender(err error) Recommender {
	return recommenderFunc(func(context.Context, domain.AIWorkoutPrompt, int) (*domain.Workout, error) {
		return nil, err
	})
}

func aiWorkout(level int) *domain.Workout {
	return &domain.Workout{
		ID:          "workout-ai",
		Date:        time.Now().UTC(),
		EnergyLevel: level,
		AIGenerated: true,
		Exercises: []domain.WorkoutExercise{
			{Exercise: domain.Exercise{ID: "back-1", Name: "Dumbbell Rows", MuscleGroup: domain.MuscleBack}, Sets: domain.NewSets(3, 10)},
		},
	}
}

func newGenerator() Generator {
	return generation.NewGenerator(catalog.Default(), generation.FixedRotation(domain.MuscleChest))
}

type fixture struct {
	ctrl  *Controller
	store *recordingStore
	creds *fakeCredentials
}

func newFixture(t *testing.T, rec Recommender, opts ...Option) fixture {
	t.Helper()
	store := &recordingStore{}
	creds := &fakeCredentials{}
	return fixture{
		ctrl:  NewController(newGenerator(), rec, creds, store, opts...),
		store: store,
		creds: creds,
	}
}

// toCounter drives a fresh session to the first set of the first exercise.
func toCounter(t *testing.T, c *Controller, level int) *domain.Workout {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.SelectEnergy(level))
	require.NoError(t, c.SelectMethod(ctx, false))
	w := WorkoutOf(c.State())
	require.NotNil(t, w)
	require.NoError(t, c.SelectExercise(w.Exercises[0].Exercise.ID))
	return w
}

// ── scenario ─────────────────────────────────────────────────────────────────

func TestController_StandardSessionEndToEnd(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	c := f.ctrl

	assert.Equal(t, PhaseEnergy, c.Phase())

	require.NoError(t, c.SelectEnergy(3))
	assert.Equal(t, MethodState{EnergyLevel: 3}, c.State())

	require.NoError(t, c.SelectMethod(ctx, false))
	ex, ok := c.State().(ExercisesState)
	require.True(t, ok)
	w := ex.Workout
	assert.Equal(t, 3, w.EnergyLevel)
	assert.False(t, w.AIGenerated)

	require.NoError(t, c.SelectExercise(w.Exercises[0].Exercise.ID))
	assert.Equal(t, CounterState{Workout: w, ExerciseIndex: 0, SetIndex: 0}, c.State())

	for c.Phase() == PhaseCounter {
		st := c.State().(CounterState)
		require.NoError(t, c.CompleteSet(st.SetIndex))
		require.NoError(t, c.Advance(ctx))
	}

	done, ok := c.State().(CompleteState)
	require.True(t, ok)
	assert.True(t, done.Workout.Completed)
	assert.Same(t, w, done.Workout)
	require.Equal(t, 1, f.store.calls())
	assert.Same(t, w, f.store.saved[0])
	assert.Equal(t, w.TotalSets(), w.CompletedSets())
}

func TestController_AdvanceTotalSetsTimesCompletes(t *testing.T) {
	for level := 1; level <= 5; level++ {
		f := newFixture(t, nil)
		w := toCounter(t, f.ctrl, level)
		total := w.TotalSets()

		for i := 1; i <= total; i++ {
			require.NoError(t, f.ctrl.Advance(context.Background()))
			if i < total {
				require.Equal(t, PhaseCounter, f.ctrl.Phase(), "level=%d advance=%d", level, i)
				assert.False(t, w.Completed)
			}
		}
		assert.Equal(t, PhaseComplete, f.ctrl.Phase(), "level=%d", level)
		assert.True(t, w.Completed)
		assert.Equal(t, 1, f.store.calls())
	}
}

func TestController_AdvanceOrder(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 1) // two exercises, two sets each
	require.Len(t, w.Exercises, 2)
	ctx := context.Background()

	require.NoError(t, f.ctrl.Advance(ctx))
	assert.Equal(t, CounterState{Workout: w, ExerciseIndex: 0, SetIndex: 1}, f.ctrl.State())

	require.NoError(t, f.ctrl.Advance(ctx))
	assert.Equal(t, CounterState{Workout: w, ExerciseIndex: 1, SetIndex: 0}, f.ctrl.State())

	require.NoError(t, f.ctrl.Advance(ctx))
	assert.Equal(t, CounterState{Workout: w, ExerciseIndex: 1, SetIndex: 1}, f.ctrl.State())

	require.NoError(t, f.ctrl.Advance(ctx))
	assert.Equal(t, CompleteState{Workout: w}, f.ctrl.State())
}

func TestController_SelectExerciseStartsAtChosenIndex(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.ctrl.SelectEnergy(2))
	require.NoError(t, f.ctrl.SelectMethod(ctx, false))
	w := WorkoutOf(f.ctrl.State())

	require.NoError(t, f.ctrl.SelectExercise(w.Exercises[1].Exercise.ID))
	st := f.ctrl.State().(CounterState)
	assert.Equal(t, 1, st.ExerciseIndex)
	assert.Equal(t, 0, st.SetIndex)
	assert.Equal(t, w.Exercises[1].Exercise.ID, st.Exercise().Exercise.ID)
}

func TestController_SelectExerciseNotFound(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.SelectEnergy(2))
	require.NoError(t, f.ctrl.SelectMethod(context.Background(), false))

	err := f.ctrl.SelectExercise("legs-404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, PhaseExercises, f.ctrl.Phase())
}

// ── set mutation ─────────────────────────────────────────────────────────────

func TestController_CompleteSetIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 3)

	require.NoError(t, f.ctrl.CompleteSet(1))
	require.NoError(t, f.ctrl.CompleteSet(1))
	assert.True(t, w.Exercises[0].Sets[1].Completed)
	assert.False(t, w.Exercises[0].Sets[0].Completed)
}

func TestController_UpdateRepsReadBack(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 3)
	before := append([]domain.Set(nil), w.Exercises[0].Sets...)

	require.NoError(t, f.ctrl.UpdateReps(1, 21))
	assert.Equal(t, 21, w.Exercises[0].Sets[1].Reps)
	assert.Equal(t, before[0], w.Exercises[0].Sets[0])
	assert.Equal(t, before[2], w.Exercises[0].Sets[2])

	require.NoError(t, f.ctrl.UpdateReps(0, 0))
	assert.Equal(t, 0, w.Exercises[0].Sets[0].Reps)
}

func TestController_SetIndexOutOfRange(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 3)
	n := len(w.Exercises[0].Sets)

	assert.ErrorIs(t, f.ctrl.UpdateReps(n, 5), ErrOutOfRange)
	assert.ErrorIs(t, f.ctrl.UpdateReps(-1, 5), ErrOutOfRange)
	assert.ErrorIs(t, f.ctrl.UpdateReps(0, -1), ErrOutOfRange)
	assert.ErrorIs(t, f.ctrl.CompleteSet(n), ErrOutOfRange)
	assert.Equal(t, 12, w.Exercises[0].Sets[0].Reps)
}

func TestController_CompletedSetStaysCompletedAfterEdits(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 3)

	require.NoError(t, f.ctrl.CompleteSet(0))
	require.NoError(t, f.ctrl.UpdateReps(0, 4))
	require.NoError(t, f.ctrl.Advance(context.Background()))
	assert.True(t, w.Exercises[0].Sets[0].Completed)
}

// ── energy & method ──────────────────────────────────────────────────────────

func TestController_SelectEnergyRejectsOutOfRange(t *testing.T) {
	f := newFixture(t, nil)
	for _, level := range []int{0, 6, -1} {
		assert.ErrorIs(t, f.ctrl.SelectEnergy(level), ErrOutOfRange, "level=%d", level)
		assert.Equal(t, PhaseEnergy, f.ctrl.Phase())
	}
}

func TestController_SelectMethodAIRoutesOnCredential(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.SelectEnergy(4))
	require.NoError(t, f.ctrl.SelectMethod(ctx, true))
	assert.Equal(t, AISetupState{EnergyLevel: 4}, f.ctrl.State())

	require.NoError(t, f.creds.Save(ctx, "key"))
	require.NoError(t, f.ctrl.ConfirmCredential())
	assert.Equal(t, AIFormState{EnergyLevel: 4}, f.ctrl.State())

	g := newFixture(t, nil)
	g.creds.has = true
	require.NoError(t, g.ctrl.SelectEnergy(2))
	require.NoError(t, g.ctrl.SelectMethod(ctx, true))
	assert.Equal(t, AIFormState{EnergyLevel: 2}, g.ctrl.State())
}

func TestController_NilCredentialStoreRoutesToSetup(t *testing.T) {
	c := NewController(newGenerator(), nil, nil, nil)
	require.NoError(t, c.SelectEnergy(1))
	require.NoError(t, c.SelectMethod(context.Background(), true))
	assert.Equal(t, PhaseAISetup, c.Phase())
}

// ── AI path ──────────────────────────────────────────────────────────────────

func toAIForm(t *testing.T, f fixture, level int) {
	t.Helper()
	f.creds.has = true
	require.NoError(t, f.ctrl.SelectEnergy(level))
	require.NoError(t, f.ctrl.SelectMethod(context.Background(), true))
	require.Equal(t, PhaseAIForm, f.ctrl.Phase())
}

func TestController_SubmitAIFormSuccess(t *testing.T) {
	var gotPrompt domain.AIWorkoutPrompt
	var gotLevel int
	rec := recommenderFunc(func(_ context.Context, p domain.AIWorkoutPrompt, level int) (*domain.Workout, error) {
		gotPrompt, gotLevel = p, level
		return aiWorkout(level), nil
	})
	f := newFixture(t, rec)
	toAIForm(t, f, 5)

	prompt := domain.AIWorkoutPrompt{FitnessGoal: "strength", Experience: domain.ExperienceAdvanced}
	out, err := f.ctrl.SubmitAIForm(context.Background(), prompt)
	require.NoError(t, err)
	assert.False(t, out.FellBack)
	assert.Nil(t, out.Cause)
	assert.Empty(t, out.Notice())
	assert.True(t, out.Workout.AIGenerated)
	assert.Equal(t, prompt, gotPrompt)
	assert.Equal(t, 5, gotLevel)

	st, ok := f.ctrl.State().(ExercisesState)
	require.True(t, ok)
	assert.Same(t, out.Workout, st.Workout)
	assert.False(t, f.ctrl.Loading())
}

func TestController_SubmitAIFormFallsBackOnNetworkError(t *testing.T) {
	f := newFixture(t, failingRecommender(errNetwork))
	toAIForm(t, f, 3)

	out, err := f.ctrl.SubmitAIForm(context.Background(), domain.AIWorkoutPrompt{FitnessGoal: "tone"})
	require.NoError(t, err)
	assert.True(t, out.FellBack)
	assert.ErrorIs(t, out.Cause, ErrAIRecommendationFailed)
	assert.ErrorIs(t, out.Cause, errNetwork)
	assert.NotEmpty(t, out.Notice())

	st, ok := f.ctrl.State().(ExercisesState)
	require.True(t, ok)
	require.NoError(t, st.Workout.Validate())
	assert.False(t, st.Workout.AIGenerated)
	assert.Equal(t, 3, st.Workout.EnergyLevel)
	assert.False(t, f.ctrl.Loading())
}

func TestController_SubmitAIFormFallsBackOnInvalidWorkout(t *testing.T) {
	cases := map[string]Recommender{
		"nil workout": recommenderFunc(func(context.Context, domain.AIWorkoutPrompt, int) (*domain.Workout, error) {
			return nil, nil
		}),
		"no exercises": recommenderFunc(func(_ context.Context, _ domain.AIWorkoutPrompt, level int) (*domain.Workout, error) {
			return &domain.Workout{ID: "w", EnergyLevel: level, AIGenerated: true}, nil
		}),
	}
	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, rec)
			toAIForm(t, f, 2)
			out, err := f.ctrl.SubmitAIForm(context.Background(), domain.AIWorkoutPrompt{})
			require.NoError(t, err)
			assert.True(t, out.FellBack)
			assert.False(t, out.Workout.AIGenerated)
			assert.Equal(t, PhaseExercises, f.ctrl.Phase())
		})
	}
}

func TestController_SubmitAIFormTimesOut(t *testing.T) {
	rec := recommenderFunc(func(ctx context.Context, _ domain.AIWorkoutPrompt, _ int) (*domain.Workout, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	f := newFixture(t, rec, WithAITimeout(20*time.Millisecond))
	toAIForm(t, f, 2)

	start := time.Now()
	out, err := f.ctrl.SubmitAIForm(context.Background(), domain.AIWorkoutPrompt{})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, out.FellBack)
	assert.ErrorIs(t, out.Cause, context.DeadlineExceeded)
	assert.Equal(t, PhaseExercises, f.ctrl.Phase())
}

func TestController_RejectsTransitionsWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	rec := recommenderFunc(func(_ context.Context, _ domain.AIWorkoutPrompt, level int) (*domain.Workout, error) {
		close(started)
		<-release
		return aiWorkout(level), nil
	})
	f := newFixture(t, rec)
	toAIForm(t, f, 3)

	done := make(chan *AIOutcome, 1)
	go func() {
		out, _ := f.ctrl.SubmitAIForm(context.Background(), domain.AIWorkoutPrompt{})
		done <- out
	}()
	<-started

	assert.True(t, f.ctrl.Loading())
	err := f.ctrl.Restart()
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.ctrl.SubmitAIForm(context.Background(), domain.AIWorkoutPrompt{})
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, PhaseAIForm, f.ctrl.Phase())

	close(release)
	out := <-done
	require.NotNil(t, out)
	assert.False(t, f.ctrl.Loading())
	assert.Equal(t, PhaseExercises, f.ctrl.Phase())
}

// ── phase guards ─────────────────────────────────────────────────────────────

func TestController_InvalidTransitionsKeepState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	c := f.ctrl

	checks := []struct {
		name string
		call func() error
	}{
		{"selectMethod", func() error { return c.SelectMethod(ctx, false) }},
		{"confirmCredential", c.ConfirmCredential},
		{"submitAiForm", func() error { _, err := c.SubmitAIForm(ctx, domain.AIWorkoutPrompt{}); return err }},
		{"selectExercise", func() error { return c.SelectExercise("chest-1") }},
		{"updateReps", func() error { return c.UpdateReps(0, 1) }},
		{"completeSet", func() error { return c.CompleteSet(0) }},
		{"advance", func() error { return c.Advance(ctx) }},
	}
	for _, tc := range checks {
		err := tc.call()
		require.ErrorIs(t, err, ErrInvalidTransition, tc.name)
		var ite *InvalidTransitionError
		require.True(t, errors.As(err, &ite))
		assert.Equal(t, tc.name, ite.Transition)
		assert.Equal(t, PhaseEnergy, ite.Phase)
		assert.False(t, errors.Is(err, ErrBusy))
		assert.Equal(t, EnergyState{}, c.State())
	}

	require.NoError(t, c.SelectEnergy(2))
	assert.ErrorIs(t, c.SelectEnergy(3), ErrInvalidTransition)
	assert.Equal(t, MethodState{EnergyLevel: 2}, c.State())
}

func TestController_CompleteOnlyAllowsRestart(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 1)
	for i := 0; i < w.TotalSets(); i++ {
		require.NoError(t, f.ctrl.Advance(context.Background()))
	}
	require.Equal(t, PhaseComplete, f.ctrl.Phase())

	assert.ErrorIs(t, f.ctrl.Advance(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, f.ctrl.CompleteSet(0), ErrInvalidTransition)
	assert.Equal(t, 1, f.store.calls())

	require.NoError(t, f.ctrl.Restart())
	assert.Equal(t, EnergyState{}, f.ctrl.State())
	assert.Equal(t, 1, f.store.calls())
	assert.True(t, w.Completed)
}

func TestController_RestartFromAnyPhase(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Restart())
	assert.Equal(t, PhaseEnergy, f.ctrl.Phase())

	toCounter(t, f.ctrl, 4)
	require.NoError(t, f.ctrl.Restart())
	assert.Equal(t, PhaseEnergy, f.ctrl.Phase())
	assert.Equal(t, 0, f.store.calls())
}

func TestController_PersistFailureKeepsCounter(t *testing.T) {
	f := newFixture(t, nil)
	w := toCounter(t, f.ctrl, 1)
	ctx := context.Background()
	for i := 0; i < w.TotalSets()-1; i++ {
		require.NoError(t, f.ctrl.Advance(ctx))
	}

	f.store.err = errors.New("disk full")
	err := f.ctrl.Advance(ctx)
	require.Error(t, err)
	assert.Equal(t, PhaseCounter, f.ctrl.Phase())
	assert.False(t, w.Completed)

	f.store.err = nil
	require.NoError(t, f.ctrl.Advance(ctx))
	assert.Equal(t, PhaseComplete, f.ctrl.Phase())
	assert.True(t, w.Completed)
	assert.Equal(t, 1, f.store.calls())
}

func TestEnergyLevelOfAndWorkoutOf(t *testing.T) {
	w := aiWorkout(4)
	assert.Equal(t, 0, EnergyLevelOf(EnergyState{}))
	assert.Equal(t, 2, EnergyLevelOf(MethodState{EnergyLevel: 2}))
	assert.Equal(t, 4, EnergyLevelOf(CounterState{Workout: w}))
	assert.Nil(t, WorkoutOf(AIFormState{EnergyLevel: 1}))
	assert.Same(t, w, WorkoutOf(CompleteState{Workout: w}))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "aiSetup", PhaseAISetup.String())
	assert.Equal(t, "counter", PhaseCounter.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
