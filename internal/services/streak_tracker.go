package services

import (
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/utils"
)

// StreakTracker maintains the per-user workout streak counters. It is the
// sole writer of streak state and runs synchronously as a side effect of
// every exercise-log append; there is no background decay job, so an idle
// streak only resets on the next workout.
type StreakTracker struct {
	repo repository.StreakRepository
}

func NewStreakTracker(repo repository.StreakRepository) *StreakTracker {
	return &StreakTracker{repo: repo}
}

// RecordWorkout feeds one workout date into the state machine. The
// read-modify-write happens inside a single transaction in the repository.
func (t *StreakTracker) RecordWorkout(userID uint, workoutDate time.Time) error {
	return t.repo.RecordTransition(userID, func(streak *models.Streak) bool {
		return advanceStreak(streak, workoutDate)
	})
}

// advanceStreak applies one transition to the streak state and reports
// whether anything changed. Dates are compared at calendar-day granularity:
//
//	no previous workout  -> current = 1
//	same day             -> no-op (idempotent re-log)
//	next day             -> current + 1
//	anything else        -> current = 1 (gaps and backdated logs both reset)
func advanceStreak(streak *models.Streak, workoutDate time.Time) bool {
	day := utils.DayStart(workoutDate)

	if streak.LastWorkoutDate == nil {
		streak.CurrentStreak = 1
	} else {
		daysDiff := utils.DaysBetween(*streak.LastWorkoutDate, day)
		switch daysDiff {
		case 0:
			return false
		case 1:
			streak.CurrentStreak++
		default:
			streak.CurrentStreak = 1
		}
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastWorkoutDate = &day
	return true
}
