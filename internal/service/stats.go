package service

import (
	"hydromate/internal/repository"

	"go.uber.org/zap"
)

// StatsService reports usage statistics
type StatsService struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(profiles repository.ProfileRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		profiles: profiles,
		logger:   logger,
	}
}

// LogUsage writes a usage snapshot to the log. Driven by the periodic job
// in main.
func (s *StatsService) LogUsage() {
	s.logger.Info("Usage snapshot",
		zap.Int("registered_profiles", s.profiles.Count()),
	)
}
