package handler

import (
	"hydromate/internal/middleware"
	"hydromate/internal/repository"
	"hydromate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	tracker  *service.TrackerService
	progress *service.ProgressService
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	tracker *service.TrackerService,
	progress *service.ProgressService,
	profiles repository.ProfileRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		tracker:  tracker,
		progress: progress,
		profiles: profiles,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers. Commands that mutate or read
// a profile are gated behind the profile middleware; /start and
// /set_profile stay open so new users can initialize.
func (h *Handler) RegisterHandlers() {
	requireProfile := middleware.RequireProfile(h.profiles, h.logger)

	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/set_profile", h.handleSetProfile)

	h.bot.Handle("/log_water", h.handleLogWater, requireProfile)
	h.bot.Handle("/log_food", h.handleLogFood, requireProfile)
	h.bot.Handle("/log_workout", h.handleLogWorkout, requireProfile)
	h.bot.Handle("/check_progress", h.handleCheckProgress, requireProfile)

	// Free text: profile data and food quantity replies
	h.bot.Handle(tele.OnText, h.handleText)
}
