package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotBonus(t *testing.T) {
	tests := []struct {
		name     string
		tempC    float64
		expected float64
	}{
		{
			name:     "cold",
			tempC:    10,
			expected: 0,
		},
		{
			name:     "boundary 25 still no bonus",
			tempC:    25,
			expected: 0,
		},
		{
			name:     "26 gets medium bonus",
			tempC:    26,
			expected: 500,
		},
		{
			name:     "boundary 30 still medium bonus",
			tempC:    30,
			expected: 500,
		},
		{
			name:     "31 gets full bonus",
			tempC:    31,
			expected: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HotBonus(tt.tempC))
		})
	}
}

func TestDailyWaterNeed(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		tempC    float64
		expected float64
	}{
		{
			name:     "70kg with 30min activity in mild weather",
			profile:  Profile{WeightKG: 70, ActivityMinutes: 30},
			tempC:    20,
			expected: 2600,
		},
		{
			name:     "activity below 30min adds nothing",
			profile:  Profile{WeightKG: 70, ActivityMinutes: 29},
			tempC:    20,
			expected: 2100,
		},
		{
			name:     "hot weather adds bonus",
			profile:  Profile{WeightKG: 70, ActivityMinutes: 60},
			tempC:    32,
			expected: 2100 + 1000 + 1000,
		},
		{
			name:     "no activity no bonus",
			profile:  Profile{WeightKG: 50},
			tempC:    0,
			expected: 1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DailyWaterNeed(tt.profile, tt.tempC))
		})
	}
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected float64
	}{
		{
			name:     "standard profile",
			profile:  Profile{WeightKG: 70, HeightCM: 175, Age: 25, LifestyleFactor: 1.2},
			expected: 2002.5,
		},
		{
			name:     "unset lifestyle factor defaults to 1.2",
			profile:  Profile{WeightKG: 70, HeightCM: 175, Age: 25},
			expected: 2002.5,
		},
		{
			name:     "active lifestyle scales up",
			profile:  Profile{WeightKG: 70, HeightCM: 175, Age: 25, LifestyleFactor: 1.5},
			expected: (10*70 + 6.25*175 - 5*25) * 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BMR(tt.profile), 1e-9)
		})
	}
}

func TestWorkoutBurn(t *testing.T) {
	tests := []struct {
		name         string
		trainingType string
		minutes      float64
		expected     float64
	}{
		{
			name:         "run",
			trainingType: "run",
			minutes:      45,
			expected:     450,
		},
		{
			name:         "case-insensitive lookup",
			trainingType: "RUN",
			minutes:      10,
			expected:     100,
		},
		{
			name:         "bike",
			trainingType: "bike",
			minutes:      30,
			expected:     240,
		},
		{
			name:         "unknown type uses default rate",
			trainingType: "yoga",
			minutes:      60,
			expected:     300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WorkoutBurn(tt.trainingType, tt.minutes))
		})
	}
}

func TestWorkoutWaterCredit(t *testing.T) {
	tests := []struct {
		name     string
		minutes  float64
		expected float64
	}{
		{
			name:     "45 minutes credits one block",
			minutes:  45,
			expected: 200,
		},
		{
			name:     "60 minutes credits two blocks",
			minutes:  60,
			expected: 400,
		},
		{
			name:     "under 30 minutes credits nothing",
			minutes:  29,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WorkoutWaterCredit(tt.minutes))
		})
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name     string
		profile  *Profile
		expected State
	}{
		{
			name:     "nil profile is unregistered",
			profile:  nil,
			expected: StateUnregistered,
		},
		{
			name:     "profile without pending food is idle",
			profile:  &Profile{UserID: 123},
			expected: StateIdle,
		},
		{
			name:     "pending food means awaiting quantity",
			profile:  &Profile{UserID: 123, PendingFood: &PendingFood{Name: "apple", CaloriesPer100g: 52}},
			expected: StateAwaitingFoodQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateOf(tt.profile))
		})
	}
}
