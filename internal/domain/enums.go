package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDomainValue is returned when a value falls outside one of the
// closed sets defined in this package.
var ErrInvalidDomainValue = errors.New("invalid domain value")

type MuscleGroup string

const (
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleLegs      MuscleGroup = "legs"
	MuscleBack      MuscleGroup = "back"
	MuscleArms      MuscleGroup = "arms"
	MuscleChest     MuscleGroup = "chest"
)

// MuscleGroups is the canonical order of the closed muscle group set.
// Rotation ties are broken by this order.
var MuscleGroups = []MuscleGroup{
	MuscleShoulders,
	MuscleLegs,
	MuscleBack,
	MuscleArms,
	MuscleChest,
}

// ParseMuscleGroup accepts a muscle group name case-insensitively.
func ParseMuscleGroup(s string) (MuscleGroup, error) {
	g := MuscleGroup(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: muscle group %q", ErrInvalidDomainValue, s)
	}
	return g, nil
}

func (g MuscleGroup) Valid() bool {
	for _, known := range MuscleGroups {
		if g == known {
			return true
		}
	}
	return false
}

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// ValidExperiences is the set of accepted experience levels.
var ValidExperiences = map[Experience]bool{
	ExperienceBeginner:     true,
	ExperienceIntermediate: true,
	ExperienceAdvanced:     true,
}
