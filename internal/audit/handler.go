package audit

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs
func ListAuditLogsHandler(trail *Trail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(trail.Entries())
	}
}
