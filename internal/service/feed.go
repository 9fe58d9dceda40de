package service

import (
	"context"
	"time"

	"github.com/ahmetb/go-linq/v3"

	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/pkg/observability"
	"clubdesk.app/backend/internal/util/feedutil"
)

// AnnouncementSource yields the broadcast items merged into the feed. Like
// NotificationStore it keeps the feed contract fakeable in tests.
type AnnouncementSource interface {
	GetActiveAnnouncements(ctx context.Context) ([]*model.Announcement, error)
}

type Feed struct {
	Inbox         *Inbox
	Announcements AnnouncementSource
}

func NewFeed(inbox *Inbox, announcements AnnouncementSource) *Feed {
	return &Feed{
		Inbox:         inbox,
		Announcements: announcements,
	}
}

// GetAccountFeed assembles the merged feed for an account together with the
// server-side counts. Notifications come through the inbox so the feed and
// every badge surface derive from the same canonical snapshot, and the counts
// use the same unread-only semantics as the badge aggregator so server- and
// client-derived numbers reconcile.
func (s *Feed) GetAccountFeed(ctx context.Context, accountID int) (*model.FeedResponse, error) {
	start := time.Now()
	defer func() {
		observability.FeedFetchDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	notifications, err := s.Inbox.Refresh(ctx, accountID)
	if err != nil {
		return nil, err
	}

	announcements, err := s.Announcements.GetActiveAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	unread := linq.From(notifications).
		WhereT(func(n *model.Notification) bool { return !n.IsRead }).
		Count()

	return &model.FeedResponse{
		Feed: feedutil.Merge(notifications, announcements),
		// announcements carry no read state and are excluded from the
		// badge count; today it therefore equals the unread notification
		// count, kept as a separate field for the bell-icon aggregate
		BadgeCount:          unread,
		UnreadNotifications: unread,
		AnnouncementCount:   len(announcements),
	}, nil
}
