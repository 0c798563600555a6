package handler

import (
	"testing"

	"hydromate/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		awaitingQuantity bool
		expected         textKind
	}{
		{
			name:     "seven tokens routes to profile data",
			text:     "70 175 25 30 1.2 London 2000",
			expected: textProfileData,
		},
		{
			name:             "seven tokens wins over pending quantity",
			text:             "70 175 25 30 1.2 London 2000",
			awaitingQuantity: true,
			expected:         textProfileData,
		},
		{
			name:             "quantity reply while awaiting",
			text:             "150",
			awaitingQuantity: true,
			expected:         textFoodQuantity,
		},
		{
			name:             "garbage while awaiting still routes to quantity",
			text:             "abc",
			awaitingQuantity: true,
			expected:         textFoodQuantity,
		},
		{
			name:     "plain number while idle is ignored",
			text:     "150",
			expected: textIgnored,
		},
		{
			name:     "chatter is ignored",
			text:     "hello there",
			expected: textIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyText(tt.text, tt.awaitingQuantity))
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase word",
			input:    "apple",
			expected: "Apple",
		},
		{
			name:     "already capitalized",
			input:    "Apple",
			expected: "Apple",
		},
		{
			name:     "multi-word keeps rest as-is",
			input:    "greek yogurt",
			expected: "Greek yogurt",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, capitalize(tt.input))
		})
	}
}

func TestFormatProgress(t *testing.T) {
	got := formatProgress(domain.Progress{
		WaterDrunkML:      600,
		WaterNeedML:       2600,
		WaterRemainingML:  2000,
		CaloriesConsumed:  900,
		CaloriesBurned:    300,
		NetCalories:       600,
		TargetCalories:    2000,
		BMR:               2002.5,
		CaloriesRemaining: -602.5,
	})

	assert.Contains(t, got, "<b>Water drunk</b>: 600.0 ml of 2600.0 ml")
	assert.Contains(t, got, "Left to drink for the daily target: 2000.0 ml")
	assert.Contains(t, got, "<b>Calories consumed</b>: 900.0")
	assert.Contains(t, got, "<b>Calories burned</b>: 300.0")
	assert.Contains(t, got, "Net calories = 600.0")
	assert.Contains(t, got, "Calories left to target: -602.5 (BMR = 2002.5)")
}
