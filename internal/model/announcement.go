package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/constant"
)

// Announcement is a broadcast feed item. It carries no per-account read
// state and therefore never contributes to unread badge aggregation.
type Announcement struct {
	bun.BaseModel `bun:"announcements,alias:ann" json:"-"`

	AnnouncementID int                `bun:",pk,autoincrement" json:"id"`
	EventKind      constant.EventKind `json:"eventKind"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	ClubID         null.Int           `json:"clubId" swaggertype:"integer"`
	LeagueID       null.Int           `json:"leagueId" swaggertype:"integer"`
	CreatorID      null.Int           `json:"creatorId" swaggertype:"integer"`
	ActionURL      null.String        `json:"actionUrl" swaggertype:"string"`
	ActionLabel    null.String        `json:"actionLabel" swaggertype:"string"`
	ImageURL       null.String        `json:"imageUrl" swaggertype:"string"`
	IsPinned       bool               `json:"isPinned"`
	ExpireAt       null.Time          `json:"expireAt" swaggertype:"string"`
	CreatedAt      time.Time          `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt      time.Time          `bun:",nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Expired reports whether the announcement has an expiry in the past
// relative to now.
func (a *Announcement) Expired(now time.Time) bool {
	return a.ExpireAt.Valid && a.ExpireAt.Time.Before(now)
}
