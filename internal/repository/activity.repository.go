package repository

import (
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository interface {
	Upsert(entry *models.ActivityLog) error
	FindByUserAndDate(userID uint, date time.Time) (*models.ActivityLog, error)
	FindByUserAndDateRange(userID uint, startDate, endDate *time.Time) ([]models.ActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

// Upsert writes the activity row for (user, day). The date is normalized to
// day granularity first; a second write for the same day replaces the row.
func (r *activityRepository) Upsert(entry *models.ActivityLog) error {
	entry.Date = utils.DayStart(entry.Date)

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps", "distance", "calories_burned", "active_minutes", "source", "updated_at",
		}),
	}).Create(entry).Error
	return apperrors.FromGorm(err)
}

func (r *activityRepository) FindByUserAndDate(userID uint, date time.Time) (*models.ActivityLog, error) {
	var entry models.ActivityLog
	err := r.db.Where("user_id = ? AND date = ?", userID, utils.DayStart(date)).First(&entry).Error
	if err != nil {
		return nil, apperrors.FromGorm(err)
	}
	return &entry, nil
}

// FindByUserAndDateRange returns activity rows newest first. Nil bounds mean
// unbounded on that side; both nil returns every row for the user.
func (r *activityRepository) FindByUserAndDateRange(userID uint, startDate, endDate *time.Time) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog

	query := r.db.Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", utils.DayStart(*startDate))
	}
	if endDate != nil {
		// Inclusive end bound: everything before the following day.
		_, next := utils.DayBounds(*endDate)
		query = query.Where("date < ?", next)
	}

	err := query.Order("date DESC").Find(&entries).Error
	return entries, apperrors.FromGorm(err)
}
