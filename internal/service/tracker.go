package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hydromate/internal/domain"
	"hydromate/internal/repository"

	"go.uber.org/zap"
)

// WeatherLookup resolves the current temperature for a city.
type WeatherLookup interface {
	Temperature(ctx context.Context, city string) (float64, error)
}

// NutritionLookup resolves calories per 100 g for a food name.
type NutritionLookup interface {
	CaloriesPer100g(ctx context.Context, foodName string) (float64, error)
}

// ErrValidation marks malformed user input. The transition is rejected and
// prior state is left untouched.
var ErrValidation = errors.New("invalid input")

// ErrNoPendingFood is returned when a quantity reply arrives without a food
// logging flow in progress.
var ErrNoPendingFood = errors.New("no pending food")

// Lookup failures degrade to these constants instead of surfacing to the
// user. Applied at the call site so the policy stays visible and testable.
const (
	FallbackTemperatureC    = 10.0
	FallbackCaloriesPer100g = 60.0
)

// ProfileTokenCount is the number of whitespace tokens in a profile-setup
// message: weight height age activity lifestyle_factor city target_calories.
const ProfileTokenCount = 7

// TrackerService implements profile setup and the water/food/workout
// logging flows over the profile repository.
type TrackerService struct {
	profiles  repository.ProfileRepository
	weather   WeatherLookup
	nutrition NutritionLookup
	logger    *zap.Logger
}

// NewTrackerService creates a new tracker service
func NewTrackerService(
	profiles repository.ProfileRepository,
	weather WeatherLookup,
	nutrition NutritionLookup,
	logger *zap.Logger,
) *TrackerService {
	return &TrackerService{
		profiles:  profiles,
		weather:   weather,
		nutrition: nutrition,
		logger:    logger,
	}
}

// WaterStatus reports the water balance after a logging event.
type WaterStatus struct {
	AddedML     float64
	DrunkML     float64
	NeedML      float64
	RemainingML float64
}

// FoodLogResult reports the outcome of a completed food logging flow.
type FoodLogResult struct {
	FoodName      string
	Grams         int
	CaloriesAdded float64
}

// WorkoutResult reports the outcome of a logged workout.
type WorkoutResult struct {
	TrainingType   string
	Minutes        int
	CaloriesBurned float64
	WaterCreditML  float64
}

// IsProfileData reports whether a free-text message is profile-setup data.
// This check takes priority over a pending food quantity reply, even when
// a quantity reply happens to contain seven words.
func IsProfileData(text string) bool {
	return len(strings.Fields(text)) == ProfileTokenCount
}

// SetupProfile parses a seven-token profile message and (re)initializes the
// user's profile, resetting all counters and clearing any pending food.
// Any parse or range failure leaves the prior profile untouched; a
// brand-new user stays unregistered.
func (s *TrackerService) SetupProfile(userID int64, text string) (domain.Profile, error) {
	tokens := strings.Fields(text)
	if len(tokens) != ProfileTokenCount {
		return domain.Profile{}, fmt.Errorf("%w: expected %d fields, got %d", ErrValidation, ProfileTokenCount, len(tokens))
	}

	weight, err := parsePositive(tokens[0])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: weight: %v", ErrValidation, err)
	}
	height, err := parsePositive(tokens[1])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: height: %v", ErrValidation, err)
	}
	age, err := parsePositive(tokens[2])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: age: %v", ErrValidation, err)
	}
	activity, err := parseNonNegative(tokens[3])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: activity minutes: %v", ErrValidation, err)
	}
	factor, err := parsePositive(tokens[4])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: lifestyle factor: %v", ErrValidation, err)
	}
	city := tokens[5]
	target, err := parsePositive(tokens[6])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: target calories: %v", ErrValidation, err)
	}

	profile := s.profiles.Init(userID, domain.Profile{
		WeightKG:        weight,
		HeightCM:        height,
		Age:             age,
		ActivityMinutes: activity,
		LifestyleFactor: factor,
		City:            city,
		TargetCalories:  target,
	})

	s.logger.Info("Profile initialized",
		zap.Int64("user_id", userID),
		zap.String("city", city),
	)

	return profile, nil
}

// WaterNeed computes the daily water target for a profile, using the
// fallback temperature when the weather lookup fails.
func (s *TrackerService) WaterNeed(ctx context.Context, p domain.Profile) float64 {
	temp := temperatureOrFallback(ctx, s.weather, p.City, s.logger)
	return domain.DailyWaterNeed(p, temp)
}

// LogWater adds a water quantity in ml to the user's counter and returns
// the resulting balance.
func (s *TrackerService) LogWater(ctx context.Context, userID int64, qtyArg string) (WaterStatus, error) {
	qty, err := parseNonNegative(qtyArg)
	if err != nil {
		return WaterStatus{}, fmt.Errorf("%w: water quantity: %v", ErrValidation, err)
	}

	profile, err := s.profiles.Update(userID, func(p *domain.Profile) {
		p.WaterDrunkML += qty
	})
	if err != nil {
		return WaterStatus{}, err
	}

	need := s.WaterNeed(ctx, profile)
	remaining := need - profile.WaterDrunkML
	if remaining < 0 {
		remaining = 0
	}

	return WaterStatus{
		AddedML:     qty,
		DrunkML:     profile.WaterDrunkML,
		NeedML:      need,
		RemainingML: remaining,
	}, nil
}

// StartFoodLog begins the two-phase food logging flow: it resolves calories
// per 100 g for the food (falling back to the default on lookup failure)
// and stores it as the pending food. Counters are not touched yet.
func (s *TrackerService) StartFoodLog(ctx context.Context, userID int64, foodName string) (domain.PendingFood, error) {
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return domain.PendingFood{}, fmt.Errorf("%w: food name is empty", ErrValidation)
	}
	if !s.profiles.Exists(userID) {
		return domain.PendingFood{}, repository.ErrProfileNotFound
	}

	kcal, err := s.nutrition.CaloriesPer100g(ctx, foodName)
	if err != nil {
		s.logger.Warn("Nutrition lookup failed, using fallback",
			zap.String("food", foodName),
			zap.Float64("fallback_calories_per_100g", FallbackCaloriesPer100g),
			zap.Error(err),
		)
		kcal = FallbackCaloriesPer100g
	}

	pending := domain.PendingFood{Name: foodName, CaloriesPer100g: kcal}

	if _, err := s.profiles.Update(userID, func(p *domain.Profile) {
		pf := pending
		p.PendingFood = &pf
	}); err != nil {
		return domain.PendingFood{}, err
	}

	return pending, nil
}

// ConfirmFoodQuantity completes the food logging flow with a gram quantity.
// Malformed or negative input rejects the transition and keeps the pending
// food so the user can retry.
func (s *TrackerService) ConfirmFoodQuantity(userID int64, qtyText string) (FoodLogResult, error) {
	grams, err := strconv.Atoi(strings.TrimSpace(qtyText))
	if err != nil || grams < 0 {
		return FoodLogResult{}, fmt.Errorf("%w: grams must be a non-negative integer", ErrValidation)
	}

	var res FoodLogResult
	var flowErr error

	if _, err := s.profiles.Update(userID, func(p *domain.Profile) {
		if p.PendingFood == nil {
			flowErr = ErrNoPendingFood
			return
		}
		consumed := p.PendingFood.CaloriesPer100g / 100.0 * float64(grams)
		p.CaloriesConsumed += consumed
		res = FoodLogResult{
			FoodName:      p.PendingFood.Name,
			Grams:         grams,
			CaloriesAdded: consumed,
		}
		p.PendingFood = nil
	}); err != nil {
		return FoodLogResult{}, err
	}
	if flowErr != nil {
		return FoodLogResult{}, flowErr
	}

	s.logger.Info("Food logged",
		zap.Int64("user_id", userID),
		zap.String("food", res.FoodName),
		zap.Float64("calories", res.CaloriesAdded),
	)

	return res, nil
}

// LogWorkout records a workout: it adds the burned calories and credits the
// water counter with 200 ml per full 30 minutes, both in one update.
func (s *TrackerService) LogWorkout(userID int64, trainingType, minutesArg string) (WorkoutResult, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesArg))
	if err != nil || minutes < 0 {
		return WorkoutResult{}, fmt.Errorf("%w: minutes must be a non-negative integer", ErrValidation)
	}

	burned := domain.WorkoutBurn(trainingType, float64(minutes))
	credit := domain.WorkoutWaterCredit(float64(minutes))

	if _, err := s.profiles.Update(userID, func(p *domain.Profile) {
		p.CaloriesBurned += burned
		p.WaterDrunkML += credit
	}); err != nil {
		return WorkoutResult{}, err
	}

	return WorkoutResult{
		TrainingType:   trainingType,
		Minutes:        minutes,
		CaloriesBurned: burned,
		WaterCreditML:  credit,
	}, nil
}

// AwaitingFoodQuantity reports whether the user is mid-flow waiting to
// reply with a gram quantity.
func (s *TrackerService) AwaitingFoodQuantity(userID int64) bool {
	snap, err := s.profiles.Snapshot(userID)
	return err == nil && snap.PendingFood != nil
}

// temperatureOrFallback maps a weather lookup failure to the documented
// fallback temperature; the failure is logged, never surfaced.
func temperatureOrFallback(ctx context.Context, weather WeatherLookup, city string, logger *zap.Logger) float64 {
	temp, err := weather.Temperature(ctx, city)
	if err != nil {
		logger.Warn("Weather lookup failed, using fallback",
			zap.String("city", city),
			zap.Float64("fallback_temp_c", FallbackTemperatureC),
			zap.Error(err),
		)
		return FallbackTemperatureC
	}
	return temp
}

func parsePositive(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", token)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive: %q", token)
	}
	return v, nil
}

func parseNonNegative(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", token)
	}
	if v < 0 {
		return 0, fmt.Errorf("must not be negative: %q", token)
	}
	return v, nil
}
