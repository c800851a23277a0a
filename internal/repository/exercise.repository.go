package repository

import (
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/utils"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(entry *models.ExerciseLog) error
	FindByUserAndDateRange(userID uint, startDate, endDate *time.Time) ([]models.ExerciseLog, error)
	CountForDay(userID uint, date time.Time) (int64, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db}
}

// Create appends an exercise log. Logs are append-only; multiple entries per
// day are allowed. The streak side effect lives in the workout logger
// service, not here.
func (r *exerciseRepository) Create(entry *models.ExerciseLog) error {
	if entry.ExerciseName == "" {
		return apperrors.NewValidationError("exercise_name", "is required")
	}
	if entry.Source == "" {
		entry.Source = "manual"
	}
	return apperrors.FromGorm(r.db.Create(entry).Error)
}

func (r *exerciseRepository) FindByUserAndDateRange(userID uint, startDate, endDate *time.Time) ([]models.ExerciseLog, error) {
	var entries []models.ExerciseLog

	query := r.db.Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", utils.DayStart(*startDate))
	}
	if endDate != nil {
		_, next := utils.DayBounds(*endDate)
		query = query.Where("date < ?", next)
	}

	err := query.Order("date DESC").Find(&entries).Error
	return entries, apperrors.FromGorm(err)
}

// CountForDay counts logs whose timestamp falls on the calendar day of date,
// ignoring time of day.
func (r *exerciseRepository) CountForDay(userID uint, date time.Time) (int64, error) {
	start, end := utils.DayBounds(date)
	var count int64
	err := r.db.Model(&models.ExerciseLog{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Count(&count).Error
	return count, apperrors.FromGorm(err)
}
