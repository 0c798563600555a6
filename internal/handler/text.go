package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"hydromate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// textKind classifies a free-text message for routing
type textKind int

const (
	textIgnored textKind = iota
	textProfileData
	textFoodQuantity
)

// classifyText is the ordered routing table for free text. The seven-token
// profile check runs strictly before the pending-quantity check, so a
// seven-word message always reads as profile data, even mid food flow.
func classifyText(text string, awaitingQuantity bool) textKind {
	if service.IsProfileData(text) {
		return textProfileData
	}
	if awaitingQuantity {
		return textFoodQuantity
	}
	return textIgnored
}

// handleText handles all free-text messages based on shape and state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch classifyText(text, h.tracker.AwaitingFoodQuantity(userID)) {
	case textProfileData:
		return h.handleProfileData(c, userID, text)
	case textFoodQuantity:
		return h.handleFoodQuantity(c, userID, text)
	default:
		// Nothing we recognize; stay silent.
		return nil
	}
}

// handleProfileData initializes the profile from a seven-field message
func (h *Handler) handleProfileData(c tele.Context, userID int64, text string) error {
	profile, err := h.tracker.SetupProfile(userID, text)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.logger.Info("Profile setup rejected",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return c.Send("Could not read that profile. Check the numbers and try again, e.g.: 70 175 25 30 1.2 London 2000")
		}
		h.logger.Error("Failed to set up profile", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	need := h.tracker.WaterNeed(context.Background(), profile)

	return c.Send(fmt.Sprintf(
		"Profile updated!\nDaily water target: %.1f ml\nDaily calorie target: %.1f kcal",
		need, profile.TargetCalories,
	))
}

// handleFoodQuantity completes the food logging flow with a gram quantity
func (h *Handler) handleFoodQuantity(c tele.Context, userID int64, text string) error {
	res, err := h.tracker.ConfirmFoodQuantity(userID, text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Send("Use a valid whole number of grams.")
		case errors.Is(err, service.ErrNoPendingFood):
			// Flow was cleared between routing and here; nothing to log.
			return nil
		default:
			h.logger.Error("Failed to log food quantity", zap.Error(err))
			return c.Send("Something went wrong. Please try again later.")
		}
	}

	return c.Send(fmt.Sprintf("OK. Logged %.1f kcal from %s.", res.CaloriesAdded, res.FoodName))
}

// capitalize upper-cases the first rune for display
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
