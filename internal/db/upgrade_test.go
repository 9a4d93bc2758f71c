package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_AddsAIGeneratedColumn simulates a database created
// before workouts tracked their origin. Existing rows must survive and pick
// up the column default.
func TestMigrate_UpgradePath_AddsAIGeneratedColumn(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE workouts (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		energy_level INTEGER NOT NULL CHECK(energy_level BETWEEN 1 AND 5),
		completed    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO workouts (id, date, energy_level, completed, created_at)
		VALUES ('workout-legacy', '2025-01-15T10:00:00Z', 3, 1, '2025-01-15T10:45:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db), "migration on legacy schema should succeed")

	var energy, completed, aiGenerated int
	err = db.QueryRow(`SELECT energy_level, completed, ai_generated FROM workouts WHERE id = 'workout-legacy'`).
		Scan(&energy, &completed, &aiGenerated)
	require.NoError(t, err)
	assert.Equal(t, 3, energy, "legacy row should survive migration")
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, aiGenerated, "legacy workouts default to generated")

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='workout_sets'`).Scan(&name)
	require.NoError(t, err, "missing tables should be created")
}
