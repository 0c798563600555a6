package handler

import (
	"context"
	"errors"
	"fmt"

	"hydromate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLogWater handles /log_water <ml>
func (h *Handler) handleLogWater(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /log_water <amount of water in ml>")
	}

	status, err := h.tracker.LogWater(context.Background(), c.Sender().ID, args[0])
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send("Water amount must be a non-negative number of ml.")
		}
		h.logger.Error("Failed to log water", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(fmt.Sprintf(
		"Logged %.1f ml. Left until the daily target: %.1f ml",
		status.AddedML, status.RemainingML,
	))
}
