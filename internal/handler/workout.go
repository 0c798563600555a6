package handler

import (
	"errors"
	"fmt"

	"hydromate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLogWorkout handles /log_workout <type> <minutes>
func (h *Handler) handleLogWorkout(c tele.Context) error {
	args := c.Args()
	if len(args) < 2 {
		return c.Send("Usage: /log_workout <training type> <minutes>")
	}

	res, err := h.tracker.LogWorkout(c.Sender().ID, args[0], args[1])
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send("Minutes must be a whole number.")
		}
		h.logger.Error("Failed to log workout", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(fmt.Sprintf(
		"%s for %d min = %.1f kcal burned.\nDrink an extra %.0f ml of water.",
		capitalize(res.TrainingType), res.Minutes, res.CaloriesBurned, res.WaterCreditML,
	))
}
