package handler

import (
	"context"
	"fmt"

	"hydromate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCheckProgress handles /check_progress
func (h *Handler) handleCheckProgress(c tele.Context) error {
	report, err := h.progress.Report(context.Background(), c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to build progress report", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(formatProgress(report))
}

// formatProgress renders a progress snapshot with the bold-emphasis subset.
func formatProgress(p domain.Progress) string {
	return fmt.Sprintf(
		"<b>Water drunk</b>: %.1f ml of %.1f ml\n"+
			"Left to drink for the daily target: %.1f ml\n\n"+
			"<b>Calories consumed</b>: %.1f\n"+
			"<b>Calories burned</b>: %.1f\n"+
			"Net calories = %.1f\n"+
			"Daily calorie target = %.1f\n"+
			"Calories left to target: %.1f (BMR = %.1f)",
		p.WaterDrunkML, p.WaterNeedML,
		p.WaterRemainingML,
		p.CaloriesConsumed,
		p.CaloriesBurned,
		p.NetCalories,
		p.TargetCalories,
		p.CaloriesRemaining, p.BMR,
	)
}
