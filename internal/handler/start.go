package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	return c.Send("Hi! Use /set_profile to initialize your profile.")
}

// handleSetProfile handles /set_profile command. The profile itself is only
// created once the user replies with the seven fields.
func (h *Handler) handleSetProfile(c tele.Context) error {
	return c.Send("Send me the following about yourself, separated by spaces:\n" +
		"- Weight (kg)\n" +
		"- Height (cm)\n" +
		"- Age\n" +
		"- Daily activity target (minutes)\n" +
		"- Lifestyle factor (1.1 sedentary to 1.5 very active)\n" +
		"- City\n" +
		"- Daily calorie target\n\n" +
		"Example: 70 175 25 30 1.2 London 2000")
}
