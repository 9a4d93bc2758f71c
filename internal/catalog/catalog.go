// Package catalog holds the exercise tables workouts are built from.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/liftoff/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog maps each muscle group to its exercises in display order.
type Catalog struct {
	groups map[domain.MuscleGroup][]domain.Exercise
}

// New validates the given table and builds a Catalog from it.
func New(groups map[domain.MuscleGroup][]domain.Exercise) (*Catalog, error) {
	c := &Catalog{groups: make(map[domain.MuscleGroup][]domain.Exercise, len(groups))}
	seen := make(map[string]bool)

	for g, list := range groups {
		if !g.Valid() {
			return nil, fmt.Errorf("%w: muscle group %q", domain.ErrInvalidDomainValue, g)
		}
		out := make([]domain.Exercise, 0, len(list))
		for _, ex := range list {
			if ex.ID == "" || strings.TrimSpace(ex.Name) == "" {
				return nil, fmt.Errorf("exercise in %s needs an id and a name", g)
			}
			if seen[ex.ID] {
				return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
			}
			seen[ex.ID] = true
			ex.MuscleGroup = g
			out = append(out, ex)
		}
		c.groups[g] = out
	}

	for _, g := range domain.MuscleGroups {
		if len(c.groups[g]) == 0 {
			return nil, fmt.Errorf("muscle group %s has no exercises", g)
		}
	}
	return c, nil
}

// Exercises returns the exercises for a group. The slice must not be modified.
func (c *Catalog) Exercises(g domain.MuscleGroup) []domain.Exercise {
	return c.groups[g]
}

// All returns every exercise in canonical group order.
func (c *Catalog) All() []domain.Exercise {
	var all []domain.Exercise
	for _, g := range domain.MuscleGroups {
		all = append(all, c.groups[g]...)
	}
	return all
}

// MatchName returns the first exercise in g whose name contains name,
// ignoring case.
func (c *Catalog) MatchName(g domain.MuscleGroup, name string) (domain.Exercise, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return domain.Exercise{}, false
	}
	for _, ex := range c.groups[g] {
		if strings.Contains(strings.ToLower(ex.Name), needle) {
			return ex, true
		}
	}
	return domain.Exercise{}, false
}

// fileSchema is the YAML layout accepted by LoadFile:
//
//	chest:
//	  - id: chest-1
//	    name: Dumbbell Bench Press
//	    description: Press dumbbells upward while lying on a bench
type fileSchema map[string][]struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	groups := make(map[domain.MuscleGroup][]domain.Exercise, len(raw))
	for name, list := range raw {
		g, err := domain.ParseMuscleGroup(name)
		if err != nil {
			return nil, err
		}
		for _, e := range list {
			groups[g] = append(groups[g], domain.Exercise{
				ID:          e.ID,
				Name:        e.Name,
				MuscleGroup: g,
				Description: e.Description,
			})
		}
	}
	return New(groups)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}
