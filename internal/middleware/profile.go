package middleware

import (
	"hydromate/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequireProfile creates middleware that gates commands behind an
// initialized profile. Unregistered users get the setup prompt instead of
// the wrapped handler; no mutation is attempted.
func RequireProfile(profiles repository.ProfileRepository, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !profiles.Exists(userID) {
				logger.Info("Command without profile",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send("Profile not found. Use /set_profile to initialize your profile.")
			}

			return next(c)
		}
	}
}
