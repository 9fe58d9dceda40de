package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/app/appconfig"
	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/pkg/cderr"
	"clubdesk.app/backend/internal/pkg/observability"
	"clubdesk.app/backend/internal/util/feedutil"
)

// NotificationStore is the backing store the inbox confirms its optimistic
// mutations against.
type NotificationStore interface {
	GetNotificationsByAccountID(ctx context.Context, accountID int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, accountID, notificationID int) error
	DeleteNotification(ctx context.Context, accountID, notificationID int) error
}

// Inbox owns the canonical per-account notification collection. Every badge
// consumer derives from the snapshot held here, and the inbox is the only
// code path that mutates read state, so pure re-derivation is sufficient for
// consistency: there is no incremental badge state to drift.
//
// Mutations are optimistic: applied to the snapshot first, confirmed against
// the store, and rolled back if the store refuses. Mark-read is confirmed
// under a bounded timeout with retries since the transition is one-way and
// re-sending it is safe.
type Inbox struct {
	store  NotificationStore
	locker *redsync.Redsync

	markReadTimeout  time.Duration
	markReadAttempts uint

	mu        sync.Mutex
	snapshots map[int][]*model.Notification
}

func NewInbox(conf *appconfig.Config, store NotificationStore, locker *redsync.Redsync) *Inbox {
	return &Inbox{
		store:            store,
		locker:           locker,
		markReadTimeout:  conf.MarkReadTimeout,
		markReadAttempts: conf.MarkReadAttempts,
		snapshots:        make(map[int][]*model.Notification),
	}
}

// Refresh replaces the account's canonical snapshot from the store. On
// fetch failure the previous snapshot, possibly stale, is retained and
// served; only a first-ever load with nothing to fall back on surfaces the
// error.
func (s *Inbox) Refresh(ctx context.Context, accountID int) ([]*model.Notification, error) {
	notifications, err := s.store.GetNotificationsByAccountID(ctx, accountID)
	if err != nil {
		s.mu.Lock()
		stale, ok := s.snapshots[accountID]
		s.mu.Unlock()
		if ok {
			log.Warn().Err(err).Int("account_id", accountID).
				Msg("feed fetch failed; serving previous snapshot")
			return stale, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.snapshots[accountID] = notifications
	s.mu.Unlock()
	return notifications, nil
}

// Snapshot returns the canonical collection, loading it on first use.
// Callers treat the result as read-only.
func (s *Inbox) Snapshot(ctx context.Context, accountID int) ([]*model.Notification, error) {
	s.mu.Lock()
	snapshot, ok := s.snapshots[accountID]
	s.mu.Unlock()
	if ok {
		return snapshot, nil
	}
	return s.Refresh(ctx, accountID)
}

// Badge derives the badge for a surface filter from the canonical snapshot.
func (s *Inbox) Badge(ctx context.Context, accountID int, filter []constant.EventKind) (*model.Badge, error) {
	snapshot, err := s.Snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return feedutil.CalculateBadge(filter, snapshot), nil
}

// ScopedAlerts derives the per-club critical info panel from the canonical
// snapshot.
func (s *Inbox) ScopedAlerts(ctx context.Context, accountID, clubID int) ([]*model.ScopedAlert, error) {
	snapshot, err := s.Snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return feedutil.ScopedCriticalInfo(clubID, snapshot), nil
}

// MarkRead flips the notification to read, optimistically locally and then
// confirmed against the store. Idempotent: marking an already-read
// notification is a no-op that still succeeds.
func (s *Inbox) MarkRead(ctx context.Context, accountID, notificationID int) error {
	unlock, err := s.lockAccount(ctx, accountID)
	if err != nil {
		return err
	}
	defer unlock()

	snapshot, err := s.Snapshot(ctx, accountID)
	if err != nil {
		return err
	}

	target := find(snapshot, notificationID)
	if target == nil {
		return cderr.ErrNotFound
	}

	prevRead, prevReadAt := target.IsRead, target.ReadAt

	s.mu.Lock()
	target.IsRead = true
	if !target.ReadAt.Valid {
		target.ReadAt = null.TimeFrom(time.Now())
	}
	s.mu.Unlock()

	err = retry.Do(
		func() error {
			callCtx, cancel := context.WithTimeout(ctx, s.markReadTimeout)
			defer cancel()
			return s.store.MarkRead(callCtx, accountID, notificationID)
		},
		retry.Context(ctx),
		retry.Attempts(s.markReadAttempts),
		retry.Delay(time.Millisecond*100),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		s.mu.Lock()
		target.IsRead = prevRead
		target.ReadAt = prevReadAt
		s.mu.Unlock()
		observability.InboxRollbacks.WithLabelValues("mark_read").Inc()
		observability.InboxMutations.WithLabelValues("mark_read", "failed").Inc()
		log.Error().Err(err).Int("account_id", accountID).Int("notification_id", notificationID).
			Msg("mark-read rejected by store; rolled back")
		return cderr.ErrUpstream
	}

	observability.InboxMutations.WithLabelValues("mark_read", "ok").Inc()
	return nil
}

// Dismiss removes the notification, optimistically locally and then
// confirmed against the store. On store failure the notification is
// reinserted at its previous position.
func (s *Inbox) Dismiss(ctx context.Context, accountID, notificationID int) error {
	unlock, err := s.lockAccount(ctx, accountID)
	if err != nil {
		return err
	}
	defer unlock()

	snapshot, err := s.Snapshot(ctx, accountID)
	if err != nil {
		return err
	}

	index := -1
	for i, n := range snapshot {
		if n.NotificationID == notificationID {
			index = i
			break
		}
	}
	if index == -1 {
		return cderr.ErrNotFound
	}
	removed := snapshot[index]

	s.mu.Lock()
	s.snapshots[accountID] = append(snapshot[:index:index], snapshot[index+1:]...)
	s.mu.Unlock()

	if err := s.store.DeleteNotification(ctx, accountID, notificationID); err != nil {
		s.mu.Lock()
		restored := make([]*model.Notification, 0, len(snapshot))
		restored = append(restored, snapshot[:index]...)
		restored = append(restored, removed)
		restored = append(restored, snapshot[index+1:]...)
		s.snapshots[accountID] = restored
		s.mu.Unlock()
		observability.InboxRollbacks.WithLabelValues("dismiss").Inc()
		observability.InboxMutations.WithLabelValues("dismiss", "failed").Inc()
		log.Error().Err(err).Int("account_id", accountID).Int("notification_id", notificationID).
			Msg("dismiss rejected by store; rolled back")
		return cderr.ErrUpstream
	}

	observability.InboxMutations.WithLabelValues("dismiss", "ok").Inc()
	return nil
}

// lockAccount enforces the single-active-mutator rule for an account's
// session across instances. Locking is skipped when no redsync pool is
// configured (single-instance and test deployments).
func (s *Inbox) lockAccount(ctx context.Context, accountID int) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	mutex := s.locker.NewMutex(
		fmt.Sprintf("inbox:%d", accountID),
		redsync.WithExpiry(time.Second*8),
		redsync.WithTries(3),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			log.Warn().Err(err).Int("account_id", accountID).Msg("failed to unlock inbox mutex")
		}
	}, nil
}

func find(notifications []*model.Notification, notificationID int) *model.Notification {
	for _, n := range notifications {
		if n.NotificationID == notificationID {
			return n
		}
	}
	return nil
}
