package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"clubdesk.app/backend/internal/model/cache"
	"clubdesk.app/backend/internal/pkg/cachectrl"
	"clubdesk.app/backend/internal/server/svr"
	"clubdesk.app/backend/internal/service"
)

type Announcement struct {
	fx.In

	AnnouncementService *service.Announcement
	Caches              *cache.Caches
}

func RegisterAnnouncement(v1 *svr.V1, c Announcement) {
	v1.Get("/announcements", c.GetAnnouncements)
}

func (c *Announcement) GetAnnouncements(ctx *fiber.Ctx) error {
	announcements, err := c.AnnouncementService.GetActiveAnnouncements(ctx.UserContext())
	if err != nil {
		return err
	}

	var lastModifiedTime time.Time
	if err := c.Caches.LastModifiedTime.Get("[announcements]", &lastModifiedTime); err != nil {
		lastModifiedTime = time.Now()
	}
	cachectrl.OptIn(ctx, lastModifiedTime)

	return ctx.JSON(announcements)
}
