package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EveryGroupHasExercises(t *testing.T) {
	c := Default()
	for _, g := range domain.MuscleGroups {
		list := c.Exercises(g)
		require.NotEmpty(t, list, "group=%s", g)
		for _, ex := range list {
			assert.Equal(t, g, ex.MuscleGroup)
		}
	}
	assert.Len(t, c.All(), 10)
}

func TestMatchName_CaseInsensitiveSubstring(t *testing.T) {
	c := Default()

	ex, ok := c.MatchName(domain.MuscleChest, "bench press")
	require.True(t, ok)
	assert.Equal(t, "chest-1", ex.ID)

	_, ok = c.MatchName(domain.MuscleChest, "Barbell Deadlift")
	assert.False(t, ok)

	_, ok = c.MatchName(domain.MuscleChest, "  ")
	assert.False(t, ok)
}

func TestParse_ValidFile(t *testing.T) {
	data := []byte(`
shoulders:
  - id: s1
    name: Arnold Press
legs:
  - id: l1
    name: Goblet Squat
    description: Hold one dumbbell at the chest
back:
  - id: b1
    name: Renegade Row
Arms:
  - id: a1
    name: Hammer Curl
chest:
  - id: c1
    name: Floor Press
`)
	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Goblet Squat", c.Exercises(domain.MuscleLegs)[0].Name)
	assert.Equal(t, domain.MuscleArms, c.Exercises(domain.MuscleArms)[0].MuscleGroup)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown group": "glutes:\n  - id: g1\n    name: Hip Thrust\n",
		"missing group": "chest:\n  - id: c1\n    name: Floor Press\n",
		"not yaml":      "chest: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	groups := make(map[domain.MuscleGroup][]domain.Exercise)
	for _, g := range domain.MuscleGroups {
		groups[g] = []domain.Exercise{{ID: "same", Name: "x"}}
	}
	_, err := New(groups)
	assert.ErrorContains(t, err, "duplicate exercise id")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := ""
	for _, g := range domain.MuscleGroups {
		body += string(g) + ":\n  - id: " + string(g) + "-x\n    name: Move " + string(g) + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.All(), 5)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
