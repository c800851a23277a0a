package mocks

import (
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.UserProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) FindCurrent() (*models.UserProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserRepository) Patch(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

// Shared MockStreakRepository
type MockStreakRepository struct {
	mock.Mock
}

func (m *MockStreakRepository) FindByUserID(userID uint) (*models.Streak, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Streak), args.Error(1)
}

func (m *MockStreakRepository) RecordTransition(userID uint, apply func(*models.Streak) bool) error {
	args := m.Called(userID, apply)
	return args.Error(0)
}

// Shared MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Upsert(entry *models.ActivityLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByUserAndDate(userID uint, date time.Time) (*models.ActivityLog, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActivityLog), args.Error(1)
}

func (m *MockActivityRepository) FindByUserAndDateRange(userID uint, startDate, endDate *time.Time) ([]models.ActivityLog, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

// Shared MockExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(entry *models.ExerciseLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockExerciseRepository) FindByUserAndDateRange(userID uint, startDate, endDate *time.Time) ([]models.ExerciseLog, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.ExerciseLog), args.Error(1)
}

func (m *MockExerciseRepository) CountForDay(userID uint, date time.Time) (int64, error) {
	args := m.Called(userID, date)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockFoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) CreateItem(item *models.FoodItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockFoodRepository) SeedCatalog(items []models.FoodItem) error {
	args := m.Called(items)
	return args.Error(0)
}

func (m *MockFoodRepository) SearchItems(query string) ([]models.FoodItem, error) {
	args := m.Called(query)
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) AllItems() ([]models.FoodItem, error) {
	args := m.Called()
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) CreateLog(entry *models.FoodLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodRepository) LogsForDay(userID uint, date time.Time) ([]models.FoodLogEntry, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.FoodLogEntry), args.Error(1)
}
