package svr

import (
	"github.com/gofiber/fiber/v2"

	"clubdesk.app/backend/internal/app/appconfig"
	"clubdesk.app/backend/internal/pkg/cderr"
)

type V1 struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Admin, *Meta) {
	v1 := app.Group("/api/v1")
	admin := app.Group("/api/_/admin", func(c *fiber.Ctx) error {
		if conf.AdminKey == "" || c.Get(fiber.HeaderAuthorization) != "Bearer "+conf.AdminKey {
			return cderr.New(fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing admin key")
		}
		return c.Next()
	})
	meta := app.Group("/api/_/meta")

	return &V1{Router: v1}, &Admin{Router: admin}, &Meta{Router: meta}
}
