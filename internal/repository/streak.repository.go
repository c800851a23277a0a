package repository

import (
	"fittrack/internal/apperrors"
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type StreakRepository interface {
	FindByUserID(userID uint) (*models.Streak, error)
	// RecordTransition loads the user's streak row, applies the transition
	// and persists the result, all inside one transaction so the
	// read-modify-write cannot lose updates. The apply func returns false
	// for a no-op transition, in which case nothing is written.
	RecordTransition(userID uint, apply func(*models.Streak) bool) error
}

type streakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db}
}

func (r *streakRepository) FindByUserID(userID uint) (*models.Streak, error) {
	var streak models.Streak
	err := r.db.Where("user_id = ?", userID).First(&streak).Error
	if err != nil {
		return nil, apperrors.FromGorm(err)
	}
	return &streak, nil
}

func (r *streakRepository) RecordTransition(userID uint, apply func(*models.Streak) bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var streak models.Streak
		if err := tx.Where("user_id = ?", userID).First(&streak).Error; err != nil {
			return apperrors.FromGorm(err)
		}
		if !apply(&streak) {
			return nil
		}
		return apperrors.FromGorm(tx.Save(&streak).Error)
	})
}
