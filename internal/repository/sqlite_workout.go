package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftoff/internal/db"
	"github.com/alexanderramin/liftoff/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database.
// A workout spans three tables; Create should run inside a transaction.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

func (r *SQLiteWorkoutRepo) Create(ctx context.Context, w *domain.Workout) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workouts (id, date, energy_level, completed, ai_generated, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID,
		formatTime(w.Date),
		w.EnergyLevel,
		boolToInt(w.Completed),
		boolToInt(w.AIGenerated),
		nowUTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("workout %s: %w", w.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("inserting workout: %w", err)
	}

	for pos, ex := range w.Exercises {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO workout_exercises (workout_id, position, exercise_id, name, muscle_group, description)
			VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID, pos, ex.Exercise.ID, ex.Exercise.Name, string(ex.Exercise.MuscleGroup), ex.Exercise.Description,
		)
		if err != nil {
			return fmt.Errorf("inserting exercise %s: %w", ex.Exercise.ID, err)
		}
		for i, set := range ex.Sets {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO workout_sets (workout_id, exercise_position, set_index, reps, completed)
				VALUES (?, ?, ?, ?, ?)`,
				w.ID, pos, i, set.Reps, boolToInt(set.Completed),
			)
			if err != nil {
				return fmt.Errorf("inserting set %d of %s: %w", i, ex.Exercise.ID, err)
			}
		}
	}
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var w domain.Workout
	var dateStr string
	var completed, aiGenerated int
	err := r.db.QueryRowContext(ctx,
		`SELECT id, date, energy_level, completed, ai_generated FROM workouts WHERE id = ?`, id,
	).Scan(&w.ID, &dateStr, &w.EnergyLevel, &completed, &aiGenerated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("workout %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout: %w", err)
	}
	if w.Date, err = parseTime(dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	w.Completed = intToBool(completed)
	w.AIGenerated = intToBool(aiGenerated)

	if w.Exercises, err = r.loadExercises(ctx, id); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQLiteWorkoutRepo) loadExercises(ctx context.Context, workoutID string) ([]domain.WorkoutExercise, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, exercise_id, name, muscle_group, description
		FROM workout_exercises WHERE workout_id = ? ORDER BY position`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing workout exercises: %w", err)
	}

	var exercises []domain.WorkoutExercise
	positions := map[int]int{}
	for rows.Next() {
		var pos int
		var ex domain.Exercise
		var group string
		if err := rows.Scan(&pos, &ex.ID, &ex.Name, &group, &ex.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		ex.MuscleGroup = domain.MuscleGroup(group)
		positions[pos] = len(exercises)
		exercises = append(exercises, domain.WorkoutExercise{Exercise: ex})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	rows.Close()

	setRows, err := r.db.QueryContext(ctx,
		`SELECT exercise_position, reps, completed FROM workout_sets
		WHERE workout_id = ? ORDER BY exercise_position, set_index`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing workout sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var pos, reps, completed int
		if err := setRows.Scan(&pos, &reps, &completed); err != nil {
			return nil, fmt.Errorf("scanning set row: %w", err)
		}
		idx, ok := positions[pos]
		if !ok {
			continue
		}
		exercises[idx].Sets = append(exercises[idx].Sets, domain.Set{Reps: reps, Completed: intToBool(completed)})
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sets: %w", err)
	}
	return exercises, nil
}

// ListRecent returns up to limit workouts, newest first. limit <= 0 means
// no limit.
func (r *SQLiteWorkoutRepo) ListRecent(ctx context.Context, limit int) ([]WorkoutSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, w.date, w.energy_level, w.completed, w.ai_generated,
			(SELECT COUNT(*) FROM workout_exercises e WHERE e.workout_id = w.id),
			(SELECT COUNT(*) FROM workout_sets s WHERE s.workout_id = w.id),
			(SELECT COUNT(*) FROM workout_sets s WHERE s.workout_id = w.id AND s.completed = 1)
		FROM workouts w
		ORDER BY w.date DESC, w.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}

	var out []WorkoutSummary
	for rows.Next() {
		var s WorkoutSummary
		var dateStr string
		var completed, aiGenerated int
		if err := rows.Scan(&s.ID, &dateStr, &s.EnergyLevel, &completed, &aiGenerated,
			&s.ExerciseCount, &s.TotalSets, &s.CompletedSets); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning workout row: %w", err)
		}
		if s.Date, err = parseTime(dateStr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("parsing date: %w", err)
		}
		s.Completed = intToBool(completed)
		s.AIGenerated = intToBool(aiGenerated)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	rows.Close()

	if err := r.fillMuscleGroups(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// fillMuscleGroups sets MuscleGroups on each summary in exercise order.
func (r *SQLiteWorkoutRepo) fillMuscleGroups(ctx context.Context, summaries []WorkoutSummary) error {
	if len(summaries) == 0 {
		return nil
	}
	index := make(map[string]int, len(summaries))
	args := make([]any, len(summaries))
	for i, s := range summaries {
		index[s.ID] = i
		args[i] = s.ID
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")

	rows, err := r.db.QueryContext(ctx, `
		SELECT workout_id, muscle_group FROM workout_exercises
		WHERE workout_id IN (`+placeholders+`)
		GROUP BY workout_id, muscle_group
		ORDER BY workout_id, MIN(position)`, args...)
	if err != nil {
		return fmt.Errorf("listing workout muscle groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, group string
		if err := rows.Scan(&id, &group); err != nil {
			return fmt.Errorf("scanning muscle group row: %w", err)
		}
		i := index[id]
		summaries[i].MuscleGroups = append(summaries[i].MuscleGroups, domain.MuscleGroup(group))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating muscle groups: %w", err)
	}
	return nil
}

// LastTrained returns, per muscle group, the date of the most recent
// completed workout that trained it. Untrained groups are absent.
func (r *SQLiteWorkoutRepo) LastTrained(ctx context.Context) (map[domain.MuscleGroup]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.muscle_group, MAX(w.date)
		FROM workouts w
		JOIN workout_exercises e ON e.workout_id = w.id
		WHERE w.completed = 1
		GROUP BY e.muscle_group`)
	if err != nil {
		return nil, fmt.Errorf("querying last trained: %w", err)
	}
	defer rows.Close()

	last := make(map[domain.MuscleGroup]time.Time)
	for rows.Next() {
		var group, dateStr string
		if err := rows.Scan(&group, &dateStr); err != nil {
			return nil, fmt.Errorf("scanning last trained row: %w", err)
		}
		t, err := parseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date: %w", err)
		}
		last[domain.MuscleGroup(group)] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating last trained: %w", err)
	}
	return last, nil
}
