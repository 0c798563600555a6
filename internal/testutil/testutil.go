package testutil

import (
	"hydromate/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestProfile creates an initialized profile with sensible attributes
func NewTestProfile(userID int64) domain.Profile {
	return domain.Profile{
		UserID:          userID,
		WeightKG:        70,
		HeightCM:        175,
		Age:             25,
		ActivityMinutes: 30,
		LifestyleFactor: 1.2,
		City:            "London",
		TargetCalories:  2000,
	}
}

// NewTestPendingFood creates a pending food record
func NewTestPendingFood(name string, caloriesPer100g float64) *domain.PendingFood {
	return &domain.PendingFood{
		Name:            name,
		CaloriesPer100g: caloriesPer100g,
	}
}
