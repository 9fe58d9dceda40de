package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/repo/selector"
)

type Announcement struct {
	db  *bun.DB
	sel selector.S[model.Announcement]
}

func NewAnnouncement(db *bun.DB) *Announcement {
	return &Announcement{db: db, sel: selector.New[model.Announcement](db)}
}

// GetActiveAnnouncements returns announcements that have not expired,
// pinned first, then newest first.
func (r *Announcement) GetActiveAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("expire_at IS NULL OR expire_at > ?", time.Now()).
			Order("is_pinned DESC", "created_at DESC", "announcement_id ASC")
	})
}

func (r *Announcement) CreateAnnouncement(ctx context.Context, announcement *model.Announcement) error {
	_, err := r.db.NewInsert().
		Model(announcement).
		Exec(ctx)
	return err
}

// DeleteExpired removes announcements whose expiry lies in the past and
// reports how many rows were swept.
func (r *Announcement) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*model.Announcement)(nil)).
		Where("expire_at IS NOT NULL AND expire_at <= ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
