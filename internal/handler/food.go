package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hydromate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLogFood handles /log_food <food name>, phase one of the food
// logging flow. The name may contain spaces.
func (h *Handler) handleLogFood(c tele.Context) error {
	foodName := strings.TrimSpace(c.Message().Payload)
	if foodName == "" {
		return c.Send("Usage: /log_food <food name>")
	}

	pending, err := h.tracker.StartFoodLog(context.Background(), c.Sender().ID, foodName)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send("Usage: /log_food <food name>")
		}
		h.logger.Error("Failed to start food log", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(fmt.Sprintf(
		"%s - %.1f kcal per 100 g. How many grams did you eat?",
		capitalize(pending.Name), pending.CaloriesPer100g,
	))
}
