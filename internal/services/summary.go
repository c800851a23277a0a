package services

import (
	"errors"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/calc"
	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/utils"
)

// SummaryService composes the day's activity, food and exercise data into a
// single rollup. The result is computed on every call and never stored, so
// profile edits show up in the calorie goal immediately.
type SummaryService struct {
	users      repository.UserRepository
	activities repository.ActivityRepository
	exercises  repository.ExerciseRepository
	foods      repository.FoodRepository
}

func NewSummaryService(
	users repository.UserRepository,
	activities repository.ActivityRepository,
	exercises repository.ExerciseRepository,
	foods repository.FoodRepository,
) *SummaryService {
	return &SummaryService{
		users:      users,
		activities: activities,
		exercises:  exercises,
		foods:      foods,
	}
}

// DailySummary builds the rollup for one calendar day. A day without data
// yields zero counts; the calorie goal is still computed from the profile.
func (s *SummaryService) DailySummary(userID uint, date time.Time) (*models.DailySummary, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	summary := &models.DailySummary{
		Date:         utils.DayStart(date),
		CaloriesGoal: calc.CalorieGoal(*user),
	}

	activity, err := s.activities.FindByUserAndDate(userID, date)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if activity != nil {
		summary.Steps = activity.Steps
		summary.CaloriesBurned = activity.CaloriesBurned
		summary.ActiveMinutes = activity.ActiveMinutes
	}

	foodLogs, err := s.foods.LogsForDay(userID, date)
	if err != nil {
		return nil, err
	}
	for _, entry := range foodLogs {
		summary.CaloriesConsumed += entry.Calories
	}

	workouts, err := s.exercises.CountForDay(userID, date)
	if err != nil {
		return nil, err
	}
	summary.WorkoutsCount = int(workouts)

	return summary, nil
}
