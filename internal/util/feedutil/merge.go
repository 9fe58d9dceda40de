package feedutil

import (
	"sort"

	"clubdesk.app/backend/internal/model"
)

// Merge combines notifications and announcements into one feed ordered by
// creation time descending. Ties are broken by identifier ascending, then by
// kind (notifications first), so repeated calls over the same input yield
// the same sequence. Inputs are not mutated.
func Merge(notifications []*model.Notification, announcements []*model.Announcement) []*model.FeedItem {
	feed := make([]*model.FeedItem, 0, len(notifications)+len(announcements))
	for _, n := range notifications {
		feed = append(feed, &model.FeedItem{
			Kind:         model.FeedItemKindNotification,
			Notification: n,
		})
	}
	for _, a := range announcements {
		feed = append(feed, &model.FeedItem{
			Kind:         model.FeedItemKindAnnouncement,
			Announcement: a,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		ti, tj := feed[i].PostedAt(), feed[j].PostedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		if feed[i].ItemID() != feed[j].ItemID() {
			return feed[i].ItemID() < feed[j].ItemID()
		}
		return feed[i].Kind == model.FeedItemKindNotification && feed[j].Kind == model.FeedItemKindAnnouncement
	})

	return feed
}
