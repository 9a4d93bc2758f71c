package catalog

import "github.com/alexanderramin/liftoff/internal/domain"

var builtin = map[domain.MuscleGroup][]domain.Exercise{
	domain.MuscleShoulders: {
		{ID: "shoulders-1", Name: "Dumbbell Shoulder Press", Description: "Press dumbbells overhead while seated or standing"},
		{ID: "shoulders-2", Name: "Lateral Raises", Description: "Raise dumbbells to the sides to shoulder height"},
	},
	domain.MuscleLegs: {
		{ID: "legs-1", Name: "Dumbbell Squat", Description: "Squat while holding dumbbells at your sides"},
		{ID: "legs-2", Name: "Dumbbell Lunges", Description: "Step forward into a lunge while holding dumbbells"},
	},
	domain.MuscleBack: {
		{ID: "back-1", Name: "Dumbbell Rows", Description: "Bend over and row dumbbells to your sides"},
		{ID: "back-2", Name: "Dumbbell Pullover", Description: "Lie on bench and pull dumbbell over your head"},
	},
	domain.MuscleArms: {
		{ID: "arms-1", Name: "Dumbbell Bicep Curls", Description: "Curl dumbbells upward toward your shoulders"},
		{ID: "arms-2", Name: "Dumbbell Tricep Extensions", Description: "Extend dumbbells overhead to work triceps"},
	},
	domain.MuscleChest: {
		{ID: "chest-1", Name: "Dumbbell Bench Press", Description: "Press dumbbells upward while lying on a bench"},
		{ID: "chest-2", Name: "Dumbbell Flyes", Description: "Open arms wide then bring dumbbells together over chest"},
	},
}

// Default returns the built-in dumbbell catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: built-in table is invalid: " + err.Error())
	}
	return c
}
