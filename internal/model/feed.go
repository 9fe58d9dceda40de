package model

import "time"

// FeedItemKind discriminates the two arms of the FeedItem union.
type FeedItemKind string

const (
	FeedItemKindNotification FeedItemKind = "notification"
	FeedItemKindAnnouncement FeedItemKind = "announcement"
)

// FeedItem is a tagged union over Notification and Announcement. Exactly one
// of the two payload pointers is non-nil, matching Kind. Consumers must
// switch on Kind instead of probing the pointers directly.
type FeedItem struct {
	Kind         FeedItemKind  `json:"kind"`
	Notification *Notification `json:"notification,omitempty"`
	Announcement *Announcement `json:"announcement,omitempty"`
}

// ItemID returns the identifier of the wrapped item.
func (i *FeedItem) ItemID() int {
	switch i.Kind {
	case FeedItemKindNotification:
		return i.Notification.NotificationID
	case FeedItemKindAnnouncement:
		return i.Announcement.AnnouncementID
	}
	return 0
}

// PostedAt returns the creation timestamp of the wrapped item.
func (i *FeedItem) PostedAt() time.Time {
	switch i.Kind {
	case FeedItemKindNotification:
		return i.Notification.CreatedAt
	case FeedItemKindAnnouncement:
		return i.Announcement.CreatedAt
	}
	return time.Time{}
}

// Badge is the aggregate shown on a navigation surface. Count is always at
// least 1: "zero matches" is represented by the absence of a Badge, never by
// a zero count.
type Badge struct {
	Count   int      `json:"count"`
	Variant Severity `json:"variant"`
}

// ScopedAlert is one line of the per-club critical info panel. Variant is
// the aggregate worst tier of the whole surviving set, not the tier of this
// individual entry.
type ScopedAlert struct {
	Variant Severity `json:"variant"`
	Message string   `json:"message"`
}

// FeedResponse is the fetch payload. The three counts are computed with the
// same unread-only semantics as the client-side aggregator so that client
// and server derived counts stay reconcilable.
type FeedResponse struct {
	Feed                []*FeedItem `json:"feed"`
	BadgeCount          int         `json:"badgeCount"`
	UnreadNotifications int         `json:"unreadNotifications"`
	AnnouncementCount   int         `json:"announcementCount"`
}
