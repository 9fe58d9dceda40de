package feedutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

func notifAt(id int, createdAt time.Time) *model.Notification {
	n := notif(id, constant.EventKindClubInvite, false)
	n.CreatedAt = createdAt
	return n
}

func annAt(id int, createdAt time.Time) *model.Announcement {
	return &model.Announcement{
		AnnouncementID: id,
		EventKind:      constant.EventKindSystemMaintenance,
		CreatedAt:      createdAt,
	}
}

func TestMergeOrdering(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	notifications := []*model.Notification{
		notifAt(3, base.Add(time.Hour)),
		notifAt(1, base),
	}
	announcements := []*model.Announcement{
		annAt(2, base.Add(2 * time.Hour)),
		annAt(9, base),
	}

	feed := Merge(notifications, announcements)
	require.Len(t, feed, 4)

	// newest first
	assert.Equal(t, 2, feed[0].ItemID())
	assert.Equal(t, model.FeedItemKindAnnouncement, feed[0].Kind)
	assert.Equal(t, 3, feed[1].ItemID())

	// timestamp tie between notification 1 and announcement 9: identifier
	// ascending wins
	assert.Equal(t, 1, feed[2].ItemID())
	assert.Equal(t, 9, feed[3].ItemID())
}

func TestMergeTimestampAndIDTie(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// same timestamp and same numeric id across kinds: notification sorts
	// before announcement to keep the order deterministic
	feed := Merge(
		[]*model.Notification{notifAt(5, at)},
		[]*model.Announcement{annAt(5, at)},
	)
	require.Len(t, feed, 2)
	assert.Equal(t, model.FeedItemKindNotification, feed[0].Kind)
	assert.Equal(t, model.FeedItemKindAnnouncement, feed[1].Kind)
}

func TestMergeStableAcrossCalls(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	notifications := []*model.Notification{
		notifAt(4, base),
		notifAt(2, base.Add(time.Minute)),
	}
	announcements := []*model.Announcement{
		annAt(1, base),
		annAt(3, base.Add(time.Minute)),
	}

	first := Merge(notifications, announcements)
	second := Merge(notifications, announcements)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind, "index %d", i)
		assert.Equal(t, first[i].ItemID(), second[i].ItemID(), "index %d", i)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	notifications := []*model.Notification{
		notifAt(2, base.Add(time.Minute)),
		notifAt(1, base.Add(time.Hour)),
	}

	Merge(notifications, nil)

	assert.Equal(t, 2, notifications[0].NotificationID)
	assert.Equal(t, 1, notifications[1].NotificationID)
}

func TestMergeRetainsDiscriminator(t *testing.T) {
	feed := Merge(
		[]*model.Notification{notifAt(1, time.Now())},
		[]*model.Announcement{annAt(2, time.Now().Add(-time.Hour))},
	)
	require.Len(t, feed, 2)

	for _, item := range feed {
		switch item.Kind {
		case model.FeedItemKindNotification:
			assert.NotNil(t, item.Notification)
			assert.Nil(t, item.Announcement)
		case model.FeedItemKindAnnouncement:
			assert.NotNil(t, item.Announcement)
			assert.Nil(t, item.Notification)
		default:
			t.Fatalf("unexpected feed item kind %q", item.Kind)
		}
	}
}
