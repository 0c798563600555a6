package domain

import (
	"math"
	"strings"
)

// DefaultLifestyleFactor is applied when a profile never set one.
const DefaultLifestyleFactor = 1.2

// workoutRates maps a training type to its burn rate in kcal per minute.
// This is the single source of truth for known training types; unknown
// types fall back to defaultWorkoutRate.
var workoutRates = map[string]float64{
	"run":  10.0,
	"walk": 5.0,
	"bike": 8.0,
}

const defaultWorkoutRate = 5.0

// HotBonus returns the extra hydration requirement in ml for an ambient
// temperature: nothing up to 25°C, 500 ml up to 30°C, 1000 ml above.
func HotBonus(tempC float64) float64 {
	switch {
	case tempC <= 25:
		return 0
	case tempC <= 30:
		return 500
	default:
		return 1000
	}
}

// DailyWaterNeed computes the daily water target in ml:
// 30 ml per kg of body weight, 500 ml per full 30 minutes of daily
// activity, plus the hot-weather bonus.
func DailyWaterNeed(p Profile, tempC float64) float64 {
	base := p.WeightKG * 30.0
	activity := math.Floor(p.ActivityMinutes/30.0) * 500.0
	return base + activity + HotBonus(tempC)
}

// BMR computes the basal metabolic rate (Mifflin-St Jeor style) scaled by
// the lifestyle factor. A zero factor means the profile never set one and
// the default applies.
func BMR(p Profile) float64 {
	factor := p.LifestyleFactor
	if factor == 0 {
		factor = DefaultLifestyleFactor
	}
	return (10*p.WeightKG + 6.25*p.HeightCM - 5*p.Age) * factor
}

// WorkoutBurn computes calories burned for a training type over the given
// minutes. The type lookup is case-insensitive.
func WorkoutBurn(trainingType string, minutes float64) float64 {
	rate, ok := workoutRates[strings.ToLower(trainingType)]
	if !ok {
		rate = defaultWorkoutRate
	}
	return rate * minutes
}

// WorkoutWaterCredit returns the extra water in ml a workout adds to the
// drunk counter: 200 ml per full 30 minutes.
func WorkoutWaterCredit(minutes float64) float64 {
	return math.Floor(minutes/30.0) * 200.0
}
