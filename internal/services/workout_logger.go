package services

import (
	"log"

	"fittrack/internal/models"
	"fittrack/internal/repository"
)

// WorkoutLogger appends exercise logs and drives the streak tracker as a
// side effect of every append.
type WorkoutLogger struct {
	exercises repository.ExerciseRepository
	tracker   *StreakTracker
}

func NewWorkoutLogger(exercises repository.ExerciseRepository, tracker *StreakTracker) *WorkoutLogger {
	return &WorkoutLogger{exercises: exercises, tracker: tracker}
}

// LogExercise inserts the entry, then advances the streak for its date.
// The insert and the streak transition are separate writes; the streak
// transition itself is atomic, and a failed insert never touches the streak.
func (w *WorkoutLogger) LogExercise(entry *models.ExerciseLog) error {
	if err := w.exercises.Create(entry); err != nil {
		return err
	}
	if err := w.tracker.RecordWorkout(entry.UserID, entry.Date); err != nil {
		log.Printf("Streak update failed for user %d: %v", entry.UserID, err)
		return err
	}
	return nil
}
