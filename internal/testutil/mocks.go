package testutil

import (
	"context"

	"hydromate/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWeatherLookup is a mock for service.WeatherLookup
type MockWeatherLookup struct {
	mock.Mock
}

func (m *MockWeatherLookup) Temperature(ctx context.Context, city string) (float64, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(float64), args.Error(1)
}

// MockNutritionLookup is a mock for service.NutritionLookup
type MockNutritionLookup struct {
	mock.Mock
}

func (m *MockNutritionLookup) CaloriesPer100g(ctx context.Context, foodName string) (float64, error) {
	args := m.Called(ctx, foodName)
	return args.Get(0).(float64), args.Error(1)
}

// MockProfileRepository is a mock for repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Init(userID int64, p domain.Profile) domain.Profile {
	args := m.Called(userID, p)
	return args.Get(0).(domain.Profile)
}

func (m *MockProfileRepository) Update(userID int64, fn func(*domain.Profile)) (domain.Profile, error) {
	args := m.Called(userID, fn)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Snapshot(userID int64) (domain.Profile, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Exists(userID int64) bool {
	args := m.Called(userID)
	return args.Bool(0)
}

func (m *MockProfileRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}
