package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupUserController() (*controllers.UserController, *mocks.MockUserRepository, *mocks.MockStreakRepository) {
	mockUsers := new(mocks.MockUserRepository)
	mockStreaks := new(mocks.MockStreakRepository)
	controller := controllers.NewUserController(mockUsers, mockStreaks)
	return controller, mockUsers, mockStreaks
}

func TestNewUserController(t *testing.T) {
	controller, _, _ := setupUserController()
	assert.NotNil(t, controller)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"name":           "Alex",
				"age":            30,
				"gender":         "male",
				"height":         180,
				"weight":         80,
				"goal":           "maintenance",
				"activity_level": "moderately_active",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("Create", mock.AnythingOfType("*models.UserProfile")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Profile created successfully",
		},
		{
			name: "missing required field",
			requestBody: map[string]interface{}{
				"name": "Alex",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "store validation error",
			requestBody: map[string]interface{}{
				"name":   "Alex",
				"age":    30,
				"height": 180,
				"weight": 80,
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("Create", mock.AnythingOfType("*models.UserProfile")).
					Return(apperrors.NewValidationError("age", "must be positive"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Failed to create profile",
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"name":   "Alex",
				"age":    30,
				"height": 180,
				"weight": 80,
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("Create", mock.AnythingOfType("*models.UserProfile")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUsers, _ := setupUserController()
			tt.setupMock(mockUsers)

			router := setupTestRouter()
			router.POST("/users", controller.CreateUser)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	controller, mockUsers, _ := setupUserController()
	mockUsers.On("FindCurrent").Return(&models.UserProfile{ID: 1, Name: "Alex"}, nil)

	router := setupTestRouter()
	router.GET("/users/current", controller.GetCurrentUser)

	req := httptest.NewRequest("GET", "/users/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Alex", data["name"])

	mockUsers.AssertExpectations(t)
}

func TestGetCurrentUserEmptyStore(t *testing.T) {
	controller, mockUsers, _ := setupUserController()
	mockUsers.On("FindCurrent").Return(nil, apperrors.ErrNotFound)

	router := setupTestRouter()
	router.GET("/users/current", controller.GetCurrentUser)

	req := httptest.NewRequest("GET", "/users/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUsers.AssertExpectations(t)
}

func TestGetStreak(t *testing.T) {
	controller, _, mockStreaks := setupUserController()
	lastDate := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	mockStreaks.On("FindByUserID", uint(1)).Return(&models.Streak{
		UserID:          1,
		CurrentStreak:   3,
		LongestStreak:   7,
		LastWorkoutDate: &lastDate,
	}, nil)

	router := setupTestRouter()
	router.GET("/users/:id/streak", controller.GetStreak)

	req := httptest.NewRequest("GET", "/users/1/streak", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["current_streak"])
	assert.EqualValues(t, 7, data["longest_streak"])

	mockStreaks.AssertExpectations(t)
}

func TestGetMetrics(t *testing.T) {
	controller, mockUsers, _ := setupUserController()
	mockUsers.On("FindByID", uint(1)).Return(&models.UserProfile{
		ID:            1,
		Name:          "Alex",
		Age:           30,
		Gender:        "male",
		Height:        180,
		Weight:        80,
		Goal:          "maintenance",
		ActivityLevel: "moderately_active",
	}, nil)

	router := setupTestRouter()
	router.GET("/users/:id/metrics", controller.GetMetrics)

	req := httptest.NewRequest("GET", "/users/1/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, 1780, data["bmr"])
	assert.EqualValues(t, 2759, data["tdee"])
	assert.EqualValues(t, 2759, data["calorie_goal"])
	assert.Equal(t, "Normal", data["bmi_category"])

	mockUsers.AssertExpectations(t)
}

func TestGetMetricsInvalidID(t *testing.T) {
	controller, _, _ := setupUserController()

	router := setupTestRouter()
	router.GET("/users/:id/metrics", controller.GetMetrics)

	req := httptest.NewRequest("GET", "/users/abc/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
