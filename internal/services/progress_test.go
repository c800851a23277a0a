package services

import (
	"testing"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressFixture(t *testing.T) (*ProgressService, repository.ActivityRepository, repository.ExerciseRepository, *models.UserProfile) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	activities := repository.NewActivityRepository(db)
	exercises := repository.NewExerciseRepository(db)

	profile := testProfile()
	require.NoError(t, users.Create(profile))

	service := NewProgressService(activities, exercises)
	service.now = func() time.Time { return day(13) } // fixed "today"
	return service, activities, exercises, profile
}

func TestTimeSeriesIsAlwaysFullWindow(t *testing.T) {
	service, _, _, profile := newProgressFixture(t)

	report, err := service.TimeSeries(profile.ID, WindowWeek)
	require.NoError(t, err)

	// An empty week still yields 7 points of zeros, oldest first.
	require.Len(t, report.Series, 7)
	assert.Equal(t, utils.DayStart(day(7)), report.Series[0].Date)
	assert.Equal(t, utils.DayStart(day(13)), report.Series[6].Date)
	for _, point := range report.Series {
		assert.Zero(t, point.Steps)
		assert.Zero(t, point.Workouts)
	}
	assert.Zero(t, report.TotalSteps)
	assert.Zero(t, report.TotalWorkouts)
	assert.Zero(t, report.AverageStepsPerDay)
}

func TestTimeSeriesJoinsActivityAndWorkouts(t *testing.T) {
	service, activities, exercises, profile := newProgressFixture(t)

	require.NoError(t, activities.Upsert(&models.ActivityLog{
		UserID: profile.ID, Steps: 7000, ActiveMinutes: 40, Date: day(12),
	}))
	require.NoError(t, activities.Upsert(&models.ActivityLog{
		UserID: profile.ID, Steps: 3000, ActiveMinutes: 15, Date: day(13),
	}))

	// Two workouts on the same day count separately.
	for _, h := range []int{8, 18} {
		require.NoError(t, exercises.Create(&models.ExerciseLog{
			UserID: profile.ID, ExerciseName: "Running", Duration: 30,
			Date: day(12).Add(time.Duration(h) * time.Hour),
		}))
	}

	// Outside the window: ignored.
	require.NoError(t, activities.Upsert(&models.ActivityLog{
		UserID: profile.ID, Steps: 99999, Date: day(2),
	}))

	report, err := service.TimeSeries(profile.ID, WindowWeek)
	require.NoError(t, err)

	require.Len(t, report.Series, 7)
	assert.Equal(t, 7000, report.Series[5].Steps)
	assert.Equal(t, 2, report.Series[5].Workouts)
	assert.Equal(t, 3000, report.Series[6].Steps)
	assert.Equal(t, 0, report.Series[6].Workouts)

	assert.Equal(t, 10000, report.TotalSteps)
	assert.Equal(t, 2, report.TotalWorkouts)
	assert.Equal(t, 55, report.TotalActiveMinutes)
	// Two logged days: 10000 / 2, not 10000 / 7.
	assert.Equal(t, 5000, report.AverageStepsPerDay)
}

func TestAverageStepsCountsLoggedDaysOnly(t *testing.T) {
	service, activities, _, profile := newProgressFixture(t)

	require.NoError(t, activities.Upsert(&models.ActivityLog{
		UserID: profile.ID, Steps: 10000, Date: day(13),
	}))

	report, err := service.TimeSeries(profile.ID, WindowWeek)
	require.NoError(t, err)

	// A single logged day averages to its own step count; the six empty
	// days in the window don't drag it down.
	assert.Equal(t, 10000, report.TotalSteps)
	assert.Equal(t, 10000, report.AverageStepsPerDay)
}

func TestTimeSeriesMonthWindow(t *testing.T) {
	service, activities, _, profile := newProgressFixture(t)

	require.NoError(t, activities.Upsert(&models.ActivityLog{
		UserID: profile.ID, Steps: 6000, Date: day(2),
	}))

	report, err := service.TimeSeries(profile.ID, WindowMonth)
	require.NoError(t, err)

	require.Len(t, report.Series, 30)
	assert.Equal(t, 30, report.WindowDays)
	assert.Equal(t, 6000, report.TotalSteps)
	assert.Equal(t, 6000, report.AverageStepsPerDay)
}
