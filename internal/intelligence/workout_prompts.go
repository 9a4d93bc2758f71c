package intelligence

import (
	"fmt"

	"github.com/alexanderramin/liftoff/internal/domain"
)

// workoutSystemPrompt pins the reply to a single JSON object.
const workoutSystemPrompt = `You are a strength coach planning a single gym session.
Pick ONE muscle group and a short list of exercises for it.

Respond ONLY with a valid JSON object. No markdown, no commentary.
The muscle group must be one of: shoulders, legs, back, arms, chest.
Use whole numbers for sets and reps. Scale volume to the user's energy level.`

// buildWorkoutPrompt renders the user's answers into the request text.
func buildWorkoutPrompt(p domain.AIWorkoutPrompt, energyLevel int) string {
	return fmt.Sprintf(`Create a personalized workout plan with the following details:
- Fitness goal: %s
- Experience level: %s
- Physical limitations or injuries: %s
- Current energy level: %d/%d

Respond ONLY with a valid JSON object in this exact format:
{
  "muscleGroup": "chest",
  "exercises": [
    {
      "name": "Exercise Name",
      "sets": 3,
      "reps": 10
    }
  ]
}`, p.FitnessGoal, p.Experience, p.Limitations, energyLevel, domain.MaxEnergyLevel)
}
