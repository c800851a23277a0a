package services

import (
	"math"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/utils"
)

const (
	WindowWeek  = 7
	WindowMonth = 30
)

// ProgressService builds per-day trend series over a trailing window for
// chart consumers.
type ProgressService struct {
	activities repository.ActivityRepository
	exercises  repository.ExerciseRepository
	now        func() time.Time
}

func NewProgressService(activities repository.ActivityRepository, exercises repository.ExerciseRepository) *ProgressService {
	return &ProgressService{
		activities: activities,
		exercises:  exercises,
		now:        time.Now,
	}
}

// TimeSeries emits exactly windowDays points, oldest to newest, ending
// today. Days without data report zeros rather than being absent, so the
// series can feed a chart directly. Rollups cover the same window.
func (s *ProgressService) TimeSeries(userID uint, windowDays int) (*models.ProgressReport, error) {
	today := utils.DayStart(s.now())
	start := today.AddDate(0, 0, -(windowDays - 1))

	activities, err := s.activities.FindByUserAndDateRange(userID, &start, &today)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exercises.FindByUserAndDateRange(userID, &start, &today)
	if err != nil {
		return nil, err
	}

	stepsByDay := make(map[time.Time]int, len(activities))
	activeByDay := make(map[time.Time]int, len(activities))
	for _, a := range activities {
		day := utils.DayStart(a.Date)
		stepsByDay[day] = a.Steps
		activeByDay[day] = a.ActiveMinutes
	}

	workoutsByDay := make(map[time.Time]int)
	for _, e := range exercises {
		workoutsByDay[utils.DayStart(e.Date)]++
	}

	report := &models.ProgressReport{
		WindowDays: windowDays,
		Series:     make([]models.ProgressPoint, 0, windowDays),
	}

	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		point := models.ProgressPoint{
			Date:     day,
			Steps:    stepsByDay[day],
			Workouts: workoutsByDay[day],
		}
		report.Series = append(report.Series, point)
		report.TotalSteps += point.Steps
		report.TotalWorkouts += point.Workouts
		report.TotalActiveMinutes += activeByDay[day]
	}

	// Average over days that have an activity row, not the whole window;
	// zero-filled days don't dilute it. 0 when no rows exist.
	if len(activities) > 0 {
		report.AverageStepsPerDay = int(math.Round(float64(report.TotalSteps) / float64(len(activities))))
	}

	return report, nil
}
