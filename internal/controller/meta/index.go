package meta

import (
	"github.com/gofiber/fiber/v2"

	"clubdesk.app/backend/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	banner := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"@link":   "https://clubdesk.app/backend",
			"message": "Welcome to ClubDesk API v1",
			"version": bininfo.Version,
		})
	}
	app.Get("/", banner)
	app.Get("/api", banner)
}
