package repository

import (
	"errors"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/utils"

	"gorm.io/gorm"
)

type FoodRepository interface {
	CreateItem(item *models.FoodItem) error
	SeedCatalog(items []models.FoodItem) error
	SearchItems(query string) ([]models.FoodItem, error)
	AllItems() ([]models.FoodItem, error)
	CreateLog(entry *models.FoodLog) error
	LogsForDay(userID uint, date time.Time) ([]models.FoodLogEntry, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db}
}

// CreateItem inserts a food item. Names are unique; a duplicate surfaces
// as ErrConstraintViolation.
func (r *foodRepository) CreateItem(item *models.FoodItem) error {
	if item.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	return apperrors.FromGorm(r.db.Create(item).Error)
}

// SeedCatalog inserts the built-in foods, skipping any name that already
// exists. Safe to run on every startup.
func (r *foodRepository) SeedCatalog(items []models.FoodItem) error {
	for i := range items {
		item := items[i]
		err := r.db.Where("name = ?", item.Name).FirstOrCreate(&item).Error
		if err != nil {
			return apperrors.FromGorm(err)
		}
	}
	return nil
}

// SearchItems matches case-insensitively on a name substring, capped at 20
// results in name order.
func (r *foodRepository) SearchItems(query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("name").
		Limit(20).
		Find(&items).Error
	return items, apperrors.FromGorm(err)
}

func (r *foodRepository) AllItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Order("name").Find(&items).Error
	return items, apperrors.FromGorm(err)
}

// CreateLog appends a food log after verifying the referenced food item
// exists; an unknown food_item_id fails with ErrNotFound.
func (r *foodRepository) CreateLog(entry *models.FoodLog) error {
	var item models.FoodItem
	if err := r.db.First(&item, entry.FoodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if entry.Quantity <= 0 {
		return apperrors.NewValidationError("quantity", "must be positive")
	}
	return apperrors.FromGorm(r.db.Create(entry).Error)
}

// LogsForDay joins each food log on its food item and scales the per-100g
// nutrition values by quantity/100. Values are left unrounded.
func (r *foodRepository) LogsForDay(userID uint, date time.Time) ([]models.FoodLogEntry, error) {
	start, end := utils.DayBounds(date)
	var entries []models.FoodLogEntry

	err := r.db.Model(&models.FoodLog{}).
		Select(`food_logs.id, food_logs.user_id, food_logs.food_item_id,
			food_items.name AS food_name,
			food_logs.quantity, food_logs.meal_type, food_logs.date,
			food_items.calories_per_100g * food_logs.quantity / 100 AS calories,
			food_items.protein * food_logs.quantity / 100 AS protein,
			food_items.carbs * food_logs.quantity / 100 AS carbs,
			food_items.fats * food_logs.quantity / 100 AS fats`).
		Joins("JOIN food_items ON food_items.id = food_logs.food_item_id").
		Where("food_logs.user_id = ? AND food_logs.date >= ? AND food_logs.date < ?", userID, start, end).
		Order("food_logs.date DESC").
		Scan(&entries).Error

	return entries, apperrors.FromGorm(err)
}
