package repository

import (
	"testing"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseLogsAreAppendOnly(t *testing.T) {
	db := newTestDB(t)
	exercises := NewExerciseRepository(db)
	profile := createTestUser(t, db)

	// Multiple logs on the same day are all kept.
	for _, h := range []int{8, 12, 18} {
		require.NoError(t, exercises.Create(&models.ExerciseLog{
			UserID:       profile.ID,
			ExerciseName: "Running",
			Duration:     30,
			Date:         testDay(0).Add(time.Duration(h) * time.Hour),
		}))
	}

	count, err := exercises.CountForDay(profile.ID, testDay(0))
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestExerciseCreateValidatesName(t *testing.T) {
	db := newTestDB(t)
	exercises := NewExerciseRepository(db)
	profile := createTestUser(t, db)

	err := exercises.Create(&models.ExerciseLog{UserID: profile.ID, Duration: 30, Date: testDay(0)})
	assert.True(t, apperrors.IsValidation(err))
}

func TestExerciseRangeQueryOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	exercises := NewExerciseRepository(db)
	profile := createTestUser(t, db)

	for offset := 0; offset < 4; offset++ {
		require.NoError(t, exercises.Create(&models.ExerciseLog{
			UserID:       profile.ID,
			ExerciseName: "Cycling",
			Duration:     20 + offset,
			Date:         testDay(offset),
		}))
	}

	logs, err := exercises.FindByUserAndDateRange(profile.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, logs, 4)
	assert.Equal(t, 23, logs[0].Duration)
	assert.Equal(t, 20, logs[3].Duration)

	start := testDay(1)
	end := testDay(2)
	bounded, err := exercises.FindByUserAndDateRange(profile.ID, &start, &end)
	require.NoError(t, err)
	require.Len(t, bounded, 2)
	assert.Equal(t, 22, bounded[0].Duration)
}

func TestCountForDayIgnoresTimeOfDay(t *testing.T) {
	db := newTestDB(t)
	exercises := NewExerciseRepository(db)
	profile := createTestUser(t, db)

	require.NoError(t, exercises.Create(&models.ExerciseLog{
		UserID:       profile.ID,
		ExerciseName: "Yoga",
		Duration:     45,
		Date:         testDay(0).Add(23*time.Hour + 30*time.Minute),
	}))

	count, err := exercises.CountForDay(profile.ID, testDay(0).Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = exercises.CountForDay(profile.ID, testDay(1))
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
