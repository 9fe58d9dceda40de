package httpserver

import (
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"clubdesk.app/backend/internal/pkg/accountid"
	"clubdesk.app/backend/internal/pkg/cderr"
)

func handleCustomError(ctx *fiber.Ctx, e *cderr.ClubDeskError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	// Provide error code if cderr.ClubDeskError type
	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	if e, ok := err.(*cderr.ClubDeskError); ok {
		return handleCustomError(ctx, e)
	}

	// Return default error handler
	// Default 500 statuscode
	re := *cderr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = e.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	hub := fibersentry.GetHubFromContext(ctx)
	if hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if u := accountid.Extract(ctx); u != 0 {
			hub.Scope().SetUser(sentry.User{
				ID: strconv.Itoa(u),
			})
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
