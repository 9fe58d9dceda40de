package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"clubdesk.app/backend/internal/pkg/cderr"
	"clubdesk.app/backend/internal/util/rekuest"
)

func InjectValidBody[T any]() func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		var dest T
		if err := ctx.BodyParser(&dest); err != nil {
			return cderr.ErrInvalidReq.Msg("invalid request: %s", err)
		}

		if err := rekuest.ValidateStruct(dest); err != nil {
			return cderr.NewInvalidViolations(err)
		}

		ctx.Locals("body", dest)

		return ctx.Next()
	}
}
