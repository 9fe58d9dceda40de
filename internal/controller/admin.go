package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/model/types"
	"clubdesk.app/backend/internal/pkg/middlewares"
	"clubdesk.app/backend/internal/repo"
	"clubdesk.app/backend/internal/server/svr"
	"clubdesk.app/backend/internal/service"
)

type AdminController struct {
	fx.In

	AnnouncementService *service.Announcement
	NotificationRepo    *repo.Notification
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/announcements", middlewares.Accepts("application/json"), middlewares.InjectValidBody[types.CreateAnnouncementRequest](), c.CreateAnnouncement)
	admin.Post("/notifications", middlewares.Accepts("application/json"), middlewares.InjectValidBody[types.CreateNotificationRequest](), c.CreateNotification)
	admin.Post("/purge", c.PurgeExpiredAnnouncements)
}

func (c *AdminController) CreateAnnouncement(ctx *fiber.Ctx) error {
	request := ctx.Locals("body").(types.CreateAnnouncementRequest)

	announcement := &model.Announcement{
		EventKind:   request.EventKind,
		Title:       request.Title,
		Message:     request.Message,
		ClubID:      request.ClubID,
		LeagueID:    request.LeagueID,
		CreatorID:   request.CreatorID,
		ActionURL:   request.ActionURL,
		ActionLabel: request.ActionLabel,
		ImageURL:    request.ImageURL,
		IsPinned:    request.IsPinned,
		ExpireAt:    request.ExpireAt,
	}
	if err := c.AnnouncementService.CreateAnnouncement(ctx.UserContext(), announcement); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(announcement)
}

func (c *AdminController) CreateNotification(ctx *fiber.Ctx) error {
	request := ctx.Locals("body").(types.CreateNotificationRequest)

	notification := &model.Notification{
		AccountID:   request.AccountID,
		EventKind:   request.EventKind,
		Title:       request.Title,
		Message:     request.Message,
		ClubID:      request.ClubID,
		LeagueID:    request.LeagueID,
		CreatorID:   request.CreatorID,
		ActionURL:   request.ActionURL,
		ActionLabel: request.ActionLabel,
		Metadata:    request.Metadata,
	}
	if err := c.NotificationRepo.CreateNotification(ctx.UserContext(), notification); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(notification)
}

func (c *AdminController) PurgeExpiredAnnouncements(ctx *fiber.Ctx) error {
	swept, err := c.AnnouncementService.PurgeExpired(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"swept": swept,
	})
}
