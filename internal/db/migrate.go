package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		energy_level INTEGER NOT NULL CHECK(energy_level BETWEEN 1 AND 5),
		completed    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,

	`CREATE TABLE IF NOT EXISTS workout_exercises (
		workout_id   TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL CHECK(position >= 0),
		exercise_id  TEXT NOT NULL,
		name         TEXT NOT NULL,
		muscle_group TEXT NOT NULL
		             CHECK(muscle_group IN ('shoulders','legs','back','arms','chest')),
		description  TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (workout_id, position),
		UNIQUE (workout_id, exercise_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_group ON workout_exercises(muscle_group)`,

	`CREATE TABLE IF NOT EXISTS workout_sets (
		workout_id        TEXT NOT NULL,
		exercise_position INTEGER NOT NULL,
		set_index         INTEGER NOT NULL CHECK(set_index >= 0),
		reps              INTEGER NOT NULL CHECK(reps >= 0),
		completed         INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (workout_id, exercise_position, set_index),
		FOREIGN KEY (workout_id, exercise_position)
			REFERENCES workout_exercises(workout_id, position) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Added after the first release; older databases gain the column here.
	`ALTER TABLE workouts ADD COLUMN ai_generated INTEGER NOT NULL DEFAULT 0`,
}
