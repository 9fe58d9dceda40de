package model

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/constant"
)

// Notification is a per-account feed item carrying read state. It is the
// only feed item kind that participates in unread badge aggregation.
type Notification struct {
	bun.BaseModel `bun:"notifications,alias:ntf" json:"-"`

	NotificationID int                `bun:",pk,autoincrement" json:"id"`
	AccountID      int                `json:"accountId"`
	EventKind      constant.EventKind `json:"eventKind"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	ClubID         null.Int           `json:"clubId" swaggertype:"integer"`
	LeagueID       null.Int           `json:"leagueId" swaggertype:"integer"`
	CreatorID      null.Int           `json:"creatorId" swaggertype:"integer"`
	ActionURL      null.String        `json:"actionUrl" swaggertype:"string"`
	ActionLabel    null.String        `json:"actionLabel" swaggertype:"string"`
	Metadata       json.RawMessage    `json:"metadata,omitempty" swaggertype:"object"`
	IsRead         bool               `json:"isRead"`
	ReadAt         null.Time          `json:"readAt" swaggertype:"string"`
	CreatedAt      time.Time          `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt      time.Time          `bun:",nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}
