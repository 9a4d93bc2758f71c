package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftoff/internal/repository"
)

// resolveWorkoutID resolves a workout identifier which can be:
//   - A full id ("workout-<uuid>", passed through directly)
//   - A uuid or uuid prefix as shown by history, with or without the
//     "workout-" prefix
//
// A prefix matching more than one workout is rejected.
func resolveWorkoutID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("workout id is required")
	}
	if _, err := app.Workouts.Get(ctx, input); err == nil {
		return input, nil
	}

	prefix := "workout-" + strings.TrimPrefix(input, "workout-")
	summaries, err := app.Workouts.ListRecent(ctx, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range summaries {
		if strings.HasPrefix(s.ID, prefix) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("workout %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("workout id %q is ambiguous (%d matches)", input, len(matches))
	}
}
