package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/pkg/cderr"
	"clubdesk.app/backend/internal/repo/selector"
)

type Notification struct {
	db  *bun.DB
	sel selector.S[model.Notification]
}

func NewNotification(db *bun.DB) *Notification {
	return &Notification{db: db, sel: selector.New[model.Notification](db)}
}

// GetNotificationsByAccountID returns the account's notifications, newest
// first with identifier ascending as the deterministic tiebreak, mirroring
// the merged feed ordering contract.
func (r *Notification) GetNotificationsByAccountID(ctx context.Context, accountID int) ([]*model.Notification, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("account_id = ?", accountID).
			Order("created_at DESC", "notification_id ASC")
	})
}

func (r *Notification) CreateNotification(ctx context.Context, notification *model.Notification) error {
	_, err := r.db.NewInsert().
		Model(notification).
		Exec(ctx)
	return err
}

// MarkRead flips is_read for the notification. The transition is one-way and
// idempotent: re-marking an already-read notification succeeds and keeps the
// original read_at.
func (r *Notification) MarkRead(ctx context.Context, accountID, notificationID int) error {
	now := time.Now()
	res, err := r.db.NewUpdate().
		Model((*model.Notification)(nil)).
		Set("is_read = TRUE").
		Set("read_at = COALESCE(read_at, ?)", now).
		Set("updated_at = ?", now).
		Where("account_id = ?", accountID).
		Where("notification_id = ?", notificationID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cderr.ErrNotFound
	}
	return nil
}

func (r *Notification) DeleteNotification(ctx context.Context, accountID, notificationID int) error {
	res, err := r.db.NewDelete().
		Model((*model.Notification)(nil)).
		Where("account_id = ?", accountID).
		Where("notification_id = ?", notificationID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cderr.ErrNotFound
	}
	return nil
}
