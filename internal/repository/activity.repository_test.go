package repository

import (
	"testing"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertActivityReplacesSameDayRow(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityRepository(db)
	profile := createTestUser(t, db)

	first := &models.ActivityLog{UserID: profile.ID, Steps: 4000, ActiveMinutes: 20, Date: testDay(0)}
	require.NoError(t, activities.Upsert(first))

	second := &models.ActivityLog{UserID: profile.ID, Steps: 9000, ActiveMinutes: 55, Date: testDay(0).Add(20 * time.Hour)}
	require.NoError(t, activities.Upsert(second))

	// Exactly one row for the day, carrying the latest values.
	var count int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Where("user_id = ?", profile.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	row, err := activities.FindByUserAndDate(profile.ID, testDay(0))
	require.NoError(t, err)
	assert.Equal(t, 9000, row.Steps)
	assert.Equal(t, 55, row.ActiveMinutes)
}

func TestUpsertActivityNormalizesDate(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityRepository(db)
	profile := createTestUser(t, db)

	entry := &models.ActivityLog{UserID: profile.ID, Steps: 100, Date: testDay(0).Add(15 * time.Hour)}
	require.NoError(t, activities.Upsert(entry))

	assert.Equal(t, testDay(0), entry.Date)
}

func TestActivityRowsPerDayStayIndependent(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityRepository(db)
	profile := createTestUser(t, db)

	require.NoError(t, activities.Upsert(&models.ActivityLog{UserID: profile.ID, Steps: 1000, Date: testDay(0)}))
	require.NoError(t, activities.Upsert(&models.ActivityLog{UserID: profile.ID, Steps: 2000, Date: testDay(1)}))

	rows, err := activities.FindByUserAndDateRange(profile.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Most recent first.
	assert.Equal(t, 2000, rows[0].Steps)
	assert.Equal(t, 1000, rows[1].Steps)
}

func TestActivityDateRangeIsInclusive(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityRepository(db)
	profile := createTestUser(t, db)

	for offset := 0; offset < 5; offset++ {
		require.NoError(t, activities.Upsert(&models.ActivityLog{
			UserID: profile.ID, Steps: 1000 * (offset + 1), Date: testDay(offset),
		}))
	}

	start := testDay(1)
	end := testDay(3)
	rows, err := activities.FindByUserAndDateRange(profile.ID, &start, &end)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, 4000, rows[0].Steps) // day 3
	assert.Equal(t, 2000, rows[2].Steps) // day 1
}

func TestFindActivityMissingDay(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityRepository(db)
	profile := createTestUser(t, db)

	_, err := activities.FindByUserAndDate(profile.ID, testDay(0))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
