package types

import (
	"github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/constant"
)

type CreateNotificationRequest struct {
	AccountID   int                `json:"accountId" validate:"required,min=1"`
	EventKind   constant.EventKind `json:"eventKind" validate:"required,eventkind" swaggertype:"integer"`
	Title       string             `json:"title" validate:"required,max=256"`
	Message     string             `json:"message" validate:"required,max=4096"`
	ClubID      null.Int           `json:"clubId" swaggertype:"integer"`
	LeagueID    null.Int           `json:"leagueId" swaggertype:"integer"`
	CreatorID   null.Int           `json:"creatorId" swaggertype:"integer"`
	ActionURL   null.String        `json:"actionUrl" validate:"omitempty,url" swaggertype:"string"`
	ActionLabel null.String        `json:"actionLabel" validate:"omitempty,max=64" swaggertype:"string"`
	Metadata    json.RawMessage    `json:"metadata,omitempty" swaggertype:"object"`
}

type CreateAnnouncementRequest struct {
	EventKind   constant.EventKind `json:"eventKind" validate:"required,eventkind" swaggertype:"integer"`
	Title       string             `json:"title" validate:"required,max=256"`
	Message     string             `json:"message" validate:"required,max=4096"`
	ClubID      null.Int           `json:"clubId" swaggertype:"integer"`
	LeagueID    null.Int           `json:"leagueId" swaggertype:"integer"`
	CreatorID   null.Int           `json:"creatorId" swaggertype:"integer"`
	ActionURL   null.String        `json:"actionUrl" validate:"omitempty,url" swaggertype:"string"`
	ActionLabel null.String        `json:"actionLabel" validate:"omitempty,max=64" swaggertype:"string"`
	ImageURL    null.String        `json:"imageUrl" validate:"omitempty,url" swaggertype:"string"`
	IsPinned    bool               `json:"isPinned"`
	ExpireAt    null.Time          `json:"expireAt" swaggertype:"string"`
}
