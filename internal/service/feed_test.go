package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

type fakeAnnouncements struct {
	announcements []*model.Announcement
	fail          bool
}

func (s *fakeAnnouncements) GetActiveAnnouncements(context.Context) ([]*model.Announcement, error) {
	if s.fail {
		return nil, errors.New("announcement source unavailable")
	}
	return s.announcements, nil
}

func broadcastAnn(id int, createdAt time.Time) *model.Announcement {
	return &model.Announcement{
		AnnouncementID: id,
		EventKind:      constant.EventKindSystemMaintenance,
		CreatedAt:      createdAt,
	}
}

func TestFeedCounts(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	store := newFakeStore(
		storedNotif(1, 7, constant.EventKindPaymentDue, false),
		storedNotif(2, 8, constant.EventKindPaymentDue, false), // another account
		storedNotif(3, 7, constant.EventKindClubInvite, true),
	)
	announcements := &fakeAnnouncements{announcements: []*model.Announcement{
		broadcastAnn(1, base.Add(2*time.Minute)),
		broadcastAnn(2, base.Add(10*time.Minute)),
	}}
	feed := NewFeed(newTestInbox(store), announcements)

	resp, err := feed.GetAccountFeed(ctx, 7)
	require.NoError(t, err)

	// read notifications and announcements never count as unread
	assert.Equal(t, 1, resp.UnreadNotifications)
	assert.Equal(t, resp.UnreadNotifications, resp.BadgeCount)
	assert.Equal(t, 2, resp.AnnouncementCount)
	require.Len(t, resp.Feed, 4)
}

func TestFeedMergedOrdering(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	store := newFakeStore(
		storedNotif(1, 7, constant.EventKindPaymentDue, false), // base+1m
		storedNotif(3, 7, constant.EventKindClubInvite, true),  // base+3m
	)
	announcements := &fakeAnnouncements{announcements: []*model.Announcement{
		broadcastAnn(1, base.Add(2*time.Minute)),
		broadcastAnn(2, base.Add(10*time.Minute)),
	}}
	feed := NewFeed(newTestInbox(store), announcements)

	resp, err := feed.GetAccountFeed(ctx, 7)
	require.NoError(t, err)
	require.Len(t, resp.Feed, 4)

	assert.Equal(t, model.FeedItemKindAnnouncement, resp.Feed[0].Kind)
	assert.Equal(t, 2, resp.Feed[0].ItemID())
	assert.Equal(t, model.FeedItemKindNotification, resp.Feed[1].Kind)
	assert.Equal(t, 3, resp.Feed[1].ItemID())
	assert.Equal(t, model.FeedItemKindAnnouncement, resp.Feed[2].Kind)
	assert.Equal(t, 1, resp.Feed[2].ItemID())
	assert.Equal(t, model.FeedItemKindNotification, resp.Feed[3].Kind)
	assert.Equal(t, 1, resp.Feed[3].ItemID())
}

func TestFeedCountsReflectMarkRead(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(
		storedNotif(1, 7, constant.EventKindPaymentDue, false),
		storedNotif(2, 7, constant.EventKindClubInvite, false),
	)
	inbox := newTestInbox(store)
	feed := NewFeed(inbox, &fakeAnnouncements{})

	resp, err := feed.GetAccountFeed(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.BadgeCount)

	require.NoError(t, inbox.MarkRead(ctx, 7, 1))

	// feed and badge derive from the same canonical snapshot
	resp, err = feed.GetAccountFeed(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.BadgeCount)
	assert.Equal(t, 1, resp.UnreadNotifications)
}

func TestFeedAnnouncementSourceFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(storedNotif(1, 7, constant.EventKindPaymentDue, false))
	feed := NewFeed(newTestInbox(store), &fakeAnnouncements{fail: true})

	_, err := feed.GetAccountFeed(ctx, 7)
	assert.Error(t, err)
}
