// Package catalog holds the built-in exercise reference list shipped with
// the app. It is static data, not persisted.
package catalog

const (
	CategoryCardio      = "cardio"
	CategoryStrength    = "strength"
	CategoryFlexibility = "flexibility"
	CategorySports      = "sports"

	EquipmentNone          = "none"
	EquipmentDumbbells     = "dumbbells"
	EquipmentBarbell       = "barbell"
	EquipmentMachine       = "machine"
	EquipmentBodyweight    = "bodyweight"
	EquipmentCardioMachine = "cardio_machine"
)

type Exercise struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    string   `json:"equipment"`
	Difficulty   string   `json:"difficulty"`
}

var Exercises = []Exercise{
	// Cardio
	{Name: "Running", Category: CategoryCardio, MuscleGroups: []string{"legs", "core"}, Equipment: EquipmentNone, Difficulty: "beginner"},
	{Name: "Walking", Category: CategoryCardio, MuscleGroups: []string{"legs"}, Equipment: EquipmentNone, Difficulty: "beginner"},
	{Name: "Cycling", Category: CategoryCardio, MuscleGroups: []string{"legs"}, Equipment: EquipmentCardioMachine, Difficulty: "beginner"},
	{Name: "Swimming", Category: CategoryCardio, MuscleGroups: []string{"full_body"}, Equipment: EquipmentNone, Difficulty: "intermediate"},
	{Name: "Jump Rope", Category: CategoryCardio, MuscleGroups: []string{"legs", "calves"}, Equipment: EquipmentNone, Difficulty: "intermediate"},

	// Strength - bodyweight
	{Name: "Push-ups", Category: CategoryStrength, MuscleGroups: []string{"chest", "shoulders", "triceps"}, Equipment: EquipmentBodyweight, Difficulty: "beginner"},
	{Name: "Pull-ups", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}, Equipment: EquipmentBodyweight, Difficulty: "intermediate"},
	{Name: "Squats", Category: CategoryStrength, MuscleGroups: []string{"legs", "glutes"}, Equipment: EquipmentBodyweight, Difficulty: "beginner"},
	{Name: "Lunges", Category: CategoryStrength, MuscleGroups: []string{"legs", "glutes"}, Equipment: EquipmentBodyweight, Difficulty: "beginner"},
	{Name: "Plank", Category: CategoryStrength, MuscleGroups: []string{"core"}, Equipment: EquipmentBodyweight, Difficulty: "beginner"},
	{Name: "Burpees", Category: CategoryStrength, MuscleGroups: []string{"full_body"}, Equipment: EquipmentBodyweight, Difficulty: "intermediate"},

	// Strength - dumbbells
	{Name: "Dumbbell Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "shoulders", "triceps"}, Equipment: EquipmentDumbbells, Difficulty: "beginner"},
	{Name: "Dumbbell Rows", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}, Equipment: EquipmentDumbbells, Difficulty: "beginner"},
	{Name: "Dumbbell Curls", Category: CategoryStrength, MuscleGroups: []string{"biceps"}, Equipment: EquipmentDumbbells, Difficulty: "beginner"},
	{Name: "Dumbbell Shoulder Press", Category: CategoryStrength, MuscleGroups: []string{"shoulders", "triceps"}, Equipment: EquipmentDumbbells, Difficulty: "beginner"},
	{Name: "Dumbbell Squats", Category: CategoryStrength, MuscleGroups: []string{"legs", "glutes"}, Equipment: EquipmentDumbbells, Difficulty: "beginner"},

	// Strength - barbell
	{Name: "Barbell Bench Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "shoulders", "triceps"}, Equipment: EquipmentBarbell, Difficulty: "intermediate"},
	{Name: "Barbell Squat", Category: CategoryStrength, MuscleGroups: []string{"legs", "glutes"}, Equipment: EquipmentBarbell, Difficulty: "intermediate"},
	{Name: "Barbell Deadlift", Category: CategoryStrength, MuscleGroups: []string{"back", "legs", "glutes"}, Equipment: EquipmentBarbell, Difficulty: "advanced"},
	{Name: "Barbell Rows", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}, Equipment: EquipmentBarbell, Difficulty: "intermediate"},

	// Flexibility
	{Name: "Yoga", Category: CategoryFlexibility, MuscleGroups: []string{"full_body"}, Equipment: EquipmentNone, Difficulty: "beginner"},
	{Name: "Stretching", Category: CategoryFlexibility, MuscleGroups: []string{"full_body"}, Equipment: EquipmentNone, Difficulty: "beginner"},
}

func ByLevel(level string) []Exercise {
	var out []Exercise
	for _, ex := range Exercises {
		if ex.Difficulty == level {
			out = append(out, ex)
		}
	}
	return out
}

// ByEquipment filters by equipment. "none" also includes bodyweight
// exercises since they need no gear either.
func ByEquipment(equipment string) []Exercise {
	var out []Exercise
	for _, ex := range Exercises {
		if ex.Equipment == equipment || (equipment == EquipmentNone && ex.Equipment == EquipmentBodyweight) {
			out = append(out, ex)
		}
	}
	return out
}

func ByCategory(category string) []Exercise {
	var out []Exercise
	for _, ex := range Exercises {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}
