package repository

import (
	"fittrack/internal/apperrors"
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(profile *models.UserProfile) error
	FindByID(id uint) (*models.UserProfile, error)
	FindCurrent() (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
	Patch(id uint, data map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// Create validates the required fields, then inserts the profile and its
// streak row (both counters zero, no last workout date) in one transaction.
// A failure leaves neither row behind.
func (r *userRepository) Create(profile *models.UserProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return apperrors.FromGorm(err)
		}
		streak := &models.Streak{
			UserID:        profile.ID,
			CurrentStreak: 0,
			LongestStreak: 0,
		}
		if err := tx.Create(streak).Error; err != nil {
			return apperrors.FromGorm(err)
		}
		return nil
	})
}

func (r *userRepository) FindByID(id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, apperrors.FromGorm(err)
	}
	return &profile, nil
}

// FindCurrent resolves the active profile as the most recently created one
// (single-profile-per-device model).
func (r *userRepository) FindCurrent() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Order("created_at DESC").First(&profile).Error
	if err != nil {
		return nil, apperrors.FromGorm(err)
	}
	return &profile, nil
}

func (r *userRepository) Update(profile *models.UserProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}
	return apperrors.FromGorm(r.db.Save(profile).Error)
}

func (r *userRepository) Patch(id uint, data map[string]interface{}) error {
	var profile models.UserProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		return apperrors.FromGorm(err)
	}
	return apperrors.FromGorm(r.db.Model(&profile).Updates(data).Error)
}

func validateProfile(profile *models.UserProfile) error {
	switch {
	case profile.Name == "":
		return apperrors.NewValidationError("name", "is required")
	case profile.Age <= 0:
		return apperrors.NewValidationError("age", "must be positive")
	case profile.Height <= 0:
		return apperrors.NewValidationError("height", "must be positive")
	case profile.Weight <= 0:
		return apperrors.NewValidationError("weight", "must be positive")
	}
	return nil
}
