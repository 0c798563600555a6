package service

import (
	"context"

	"hydromate/internal/domain"
	"hydromate/internal/repository"

	"go.uber.org/zap"
)

// ProgressService composes read-only progress snapshots from the profile
// store and the calculation formulas.
type ProgressService struct {
	profiles repository.ProfileRepository
	weather  WeatherLookup
	logger   *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(
	profiles repository.ProfileRepository,
	weather WeatherLookup,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		profiles: profiles,
		weather:  weather,
		logger:   logger,
	}
}

// Report builds the progress snapshot for a user. Water remaining never
// goes negative; calories remaining accounts for both net intake and BMR.
func (s *ProgressService) Report(ctx context.Context, userID int64) (domain.Progress, error) {
	snap, err := s.profiles.Snapshot(userID)
	if err != nil {
		return domain.Progress{}, err
	}

	temp := temperatureOrFallback(ctx, s.weather, snap.City, s.logger)
	need := domain.DailyWaterNeed(snap, temp)

	waterRemaining := need - snap.WaterDrunkML
	if waterRemaining < 0 {
		waterRemaining = 0
	}

	bmr := domain.BMR(snap)
	net := snap.CaloriesConsumed - snap.CaloriesBurned

	return domain.Progress{
		WaterDrunkML:      snap.WaterDrunkML,
		WaterNeedML:       need,
		WaterRemainingML:  waterRemaining,
		CaloriesConsumed:  snap.CaloriesConsumed,
		CaloriesBurned:    snap.CaloriesBurned,
		NetCalories:       net,
		TargetCalories:    snap.TargetCalories,
		BMR:               bmr,
		CaloriesRemaining: snap.TargetCalories - net - bmr,
	}, nil
}
