package repository

import (
	"fittrack/internal/apperrors"
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type WorkoutPlanRepository interface {
	Create(plan *models.WorkoutPlan) error
	FindAllByUserID(userID uint) ([]models.WorkoutPlan, error)
	FindByID(id uint) (*models.WorkoutPlan, error)
	Delete(id uint) error
}

type workoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db}
}

func (r *workoutPlanRepository) Create(plan *models.WorkoutPlan) error {
	if plan.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	return apperrors.FromGorm(r.db.Create(plan).Error)
}

func (r *workoutPlanRepository) FindAllByUserID(userID uint) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, apperrors.FromGorm(err)
}

func (r *workoutPlanRepository) FindByID(id uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, apperrors.FromGorm(err)
	}
	return &plan, nil
}

func (r *workoutPlanRepository) Delete(id uint) error {
	return apperrors.FromGorm(r.db.Delete(&models.WorkoutPlan{}, id).Error)
}
