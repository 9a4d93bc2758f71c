package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/liftoff/internal/db"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/repository"
)

type workoutService struct {
	workouts repository.WorkoutRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWorkoutService(workouts repository.WorkoutRepo, uow db.UnitOfWork, observers ...UseCaseObserver) WorkoutService {
	return &workoutService{
		workouts: workouts,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Persist writes w and all its exercises and sets in one transaction.
func (s *workoutService) Persist(ctx context.Context, w *domain.Workout) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "persist-workout", startedAt, err, fields) }()

	if w == nil {
		return fmt.Errorf("persisting workout: nil workout")
	}
	fields["workout_id"] = w.ID
	fields["sets"] = w.TotalSets()
	fields["completed_sets"] = w.CompletedSets()
	fields["ai_generated"] = w.AIGenerated

	if !w.Completed {
		return fmt.Errorf("workout %s: %w", w.ID, ErrIncompleteWorkout)
	}
	if err = w.Validate(); err != nil {
		return fmt.Errorf("persisting workout: %w", err)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkoutRepo(tx).Create(ctx, w)
	})
}

func (s *workoutService) Get(ctx context.Context, id string) (*domain.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

func (s *workoutService) ListRecent(ctx context.Context, limit int) ([]repository.WorkoutSummary, error) {
	return s.workouts.ListRecent(ctx, limit)
}

func (s *workoutService) LastTrained(ctx context.Context) (map[domain.MuscleGroup]time.Time, error) {
	return s.workouts.LastTrained(ctx)
}
