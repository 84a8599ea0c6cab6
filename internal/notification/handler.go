package notification

import (
	"goldshop-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

// GET /api/notifications
func ListNotificationsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(l.Notifications())
	}
}

// DELETE /api/notifications
// Clear-all is the only dismissal the UI offers.
func ClearNotificationsHandler(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l.ClearNotifications()
		return c.SendStatus(fiber.StatusNoContent)
	}
}
