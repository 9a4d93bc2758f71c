package domain

import (
	"fmt"
	"strings"
)

// AIWorkoutPrompt holds the user's answers on the AI workout form.
type AIWorkoutPrompt struct {
	FitnessGoal string
	Experience  Experience
	Limitations string
}

// Normalize trims free text and fills defaults for optional answers.
func (p AIWorkoutPrompt) Normalize() AIWorkoutPrompt {
	p.FitnessGoal = strings.TrimSpace(p.FitnessGoal)
	p.Limitations = CoalesceStr(strings.TrimSpace(p.Limitations), "none")
	p.Experience = Experience(CoalesceStr(strings.ToLower(strings.TrimSpace(string(p.Experience))), string(ExperienceBeginner)))
	return p
}

// Validate requires a goal and a known experience level.
func (p AIWorkoutPrompt) Validate() error {
	if strings.TrimSpace(p.FitnessGoal) == "" {
		return fmt.Errorf("fitness goal is required")
	}
	if !ValidExperiences[p.Experience] {
		return fmt.Errorf("%w: experience %q", ErrInvalidDomainValue, p.Experience)
	}
	return nil
}
