package v1

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/pkg/accountid"
	"clubdesk.app/backend/internal/pkg/cachectrl"
	"clubdesk.app/backend/internal/pkg/cderr"
	"clubdesk.app/backend/internal/server/svr"
	"clubdesk.app/backend/internal/service"
)

type Feed struct {
	fx.In

	FeedService  *service.Feed
	InboxService *service.Inbox
}

func RegisterFeed(v1 *svr.V1, c Feed) {
	v1.Get("/feed", c.GetFeed)
	v1.Get("/feed/badge", c.GetBadge)
	v1.Post("/feed/notifications/:notificationId/read", c.MarkRead)
	v1.Delete("/feed/notifications/:notificationId", c.Dismiss)
	v1.Get("/clubs/:clubId/alerts", c.GetClubAlerts)
}

func requireAccount(ctx *fiber.Ctx) (int, error) {
	accountID := accountid.Extract(ctx)
	if accountID == 0 {
		return 0, cderr.ErrInvalidReq.Msg("invalid or missing account identity")
	}
	return accountID, nil
}

func (c *Feed) GetFeed(ctx *fiber.Ctx) error {
	accountID, err := requireAccount(ctx)
	if err != nil {
		return err
	}

	feed, err := c.FeedService.GetAccountFeed(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}

	// refresh session continuity for header-authenticated clients
	accountid.Inject(ctx, accountID)

	// per-account content: intermediaries must not cache it
	cachectrl.OptOut(ctx)
	return ctx.JSON(feed)
}

// GetBadge derives the badge for one surface. The surface declares its kinds
// of interest via the `kinds` query param; a surface that did not declare a
// filter gets no badge, which is distinct from a declared filter that
// currently matches nothing.
func (c *Feed) GetBadge(ctx *fiber.Ctx) error {
	accountID, err := requireAccount(ctx)
	if err != nil {
		return err
	}

	if !ctx.Request().URI().QueryArgs().Has("kinds") {
		return ctx.SendStatus(fiber.StatusNoContent)
	}

	filter := []constant.EventKind{}
	if raw := strings.TrimSpace(ctx.Query("kinds")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			code, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || code <= 0 {
				return cderr.ErrInvalidReq.Msg("invalid event kind in kinds filter: %s", part)
			}
			filter = append(filter, constant.EventKind(code))
		}
	}

	badge, err := c.InboxService.Badge(ctx.UserContext(), accountID, filter)
	if err != nil {
		return err
	}
	if badge == nil {
		return ctx.SendStatus(fiber.StatusNoContent)
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(badge)
}

func (c *Feed) MarkRead(ctx *fiber.Ctx) error {
	accountID, err := requireAccount(ctx)
	if err != nil {
		return err
	}

	notificationID, err := ctx.ParamsInt("notificationId")
	if err != nil || notificationID <= 0 {
		return cderr.ErrInvalidReq.Msg("invalid or missing notificationId")
	}

	if err := c.InboxService.MarkRead(ctx.UserContext(), accountID, notificationID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Feed) Dismiss(ctx *fiber.Ctx) error {
	accountID, err := requireAccount(ctx)
	if err != nil {
		return err
	}

	notificationID, err := ctx.ParamsInt("notificationId")
	if err != nil || notificationID <= 0 {
		return cderr.ErrInvalidReq.Msg("invalid or missing notificationId")
	}

	if err := c.InboxService.Dismiss(ctx.UserContext(), accountID, notificationID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Feed) GetClubAlerts(ctx *fiber.Ctx) error {
	accountID, err := requireAccount(ctx)
	if err != nil {
		return err
	}

	clubID, err := ctx.ParamsInt("clubId")
	if err != nil || clubID <= 0 {
		return cderr.ErrInvalidReq.Msg("invalid or missing clubId")
	}

	alerts, err := c.InboxService.ScopedAlerts(ctx.UserContext(), accountID, clubID)
	if err != nil {
		return err
	}
	if len(alerts) == 0 {
		return ctx.SendStatus(fiber.StatusNoContent)
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(alerts)
}
