package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftoff/internal/catalog"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/generation"
	"github.com/alexanderramin/liftoff/internal/llm"
)

const (
	defaultSets = 3
	defaultReps = 10
	maxSets     = 10
	maxReps     = 100
)

// aiPlan is the JSON shape the model is asked to return.
type aiPlan struct {
	MuscleGroup string       `json:"muscleGroup"`
	Exercises   []aiExercise `json:"exercises"`
}

type aiExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

func validatePlan(p aiPlan) error {
	if len(p.Exercises) == 0 {
		return fmt.Errorf("no exercises in plan")
	}
	return nil
}

// WorkoutRecommender asks the model for a workout and maps the reply onto
// catalog exercises.
type WorkoutRecommender struct {
	client  llm.LLMClient
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewWorkoutRecommender creates a recommender backed by client.
func NewWorkoutRecommender(client llm.LLMClient, c *catalog.Catalog) *WorkoutRecommender {
	return &WorkoutRecommender{client: client, catalog: c, now: time.Now}
}

// Recommend returns an AI-built workout or an error classified as
// ErrCredentialMissing, ErrNetwork, ErrMalformedResponse or
// ErrInvalidDomainValue.
func (r *WorkoutRecommender) Recommend(ctx context.Context, prompt domain.AIWorkoutPrompt, energyLevel int) (*domain.Workout, error) {
	prompt = prompt.Normalize()

	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskWorkout,
		SystemPrompt: workoutSystemPrompt,
		UserPrompt:   buildWorkoutPrompt(prompt, energyLevel),
	})
	if err != nil {
		return nil, classify(err)
	}

	plan, err := llm.ExtractJSON(resp.Text, validatePlan)
	if err != nil {
		return nil, classify(err)
	}

	group, err := domain.ParseMuscleGroup(plan.MuscleGroup)
	if err != nil {
		return nil, err
	}

	exercises := r.mapExercises(group, plan.Exercises)
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: no exercises for %s", ErrMalformedResponse, group)
	}

	return &domain.Workout{
		ID:          generation.NewWorkoutID(),
		Date:        r.now().UTC(),
		EnergyLevel: domain.ClampInt(energyLevel, domain.MinEnergyLevel, domain.MaxEnergyLevel),
		Exercises:   exercises,
		AIGenerated: true,
	}, nil
}

// mapExercises resolves each suggestion to a catalog exercise of group,
// by name when possible and by position otherwise. A catalog exercise is
// used at most once.
func (r *WorkoutRecommender) mapExercises(group domain.MuscleGroup, suggested []aiExercise) []domain.WorkoutExercise {
	available := r.catalog.Exercises(group)
	if len(available) == 0 {
		return nil
	}

	used := make(map[string]bool, len(suggested))
	out := make([]domain.WorkoutExercise, 0, len(suggested))
	for i, s := range suggested {
		ex, ok := r.catalog.MatchName(group, strings.TrimSpace(s.Name))
		if !ok {
			ex = available[i%len(available)]
		}
		if used[ex.ID] {
			continue
		}
		used[ex.ID] = true

		sets := min(domain.PositiveOr(s.Sets, defaultSets), maxSets)
		reps := min(domain.PositiveOr(s.Reps, defaultReps), maxReps)
		out = append(out, domain.WorkoutExercise{
			Exercise: ex,
			Sets:     domain.NewSets(sets, reps),
		})
	}
	return out
}
