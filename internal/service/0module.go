package service

import (
	"go.uber.org/fx"

	"clubdesk.app/backend/internal/repo"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewFeed,
		NewInbox,
		NewHealth,
		NewAnnouncement,

		// the inbox confirms mutations against the store, and the feed
		// sources announcements, through interfaces so both contracts
		// stay fakeable in tests
		func(r *repo.Notification) NotificationStore { return r },
		func(s *Announcement) AnnouncementSource { return s },
	))
}
