package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/app/appconfig"
	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/pkg/cderr"
)

type fakeStore struct {
	mu            sync.Mutex
	notifications map[int]*model.Notification

	failList      bool
	failMarkRead  int // fail this many mark-read calls before succeeding
	failDelete    bool
	markReadCalls int
}

func newFakeStore(notifications ...*model.Notification) *fakeStore {
	s := &fakeStore{notifications: make(map[int]*model.Notification)}
	for _, n := range notifications {
		s.notifications[n.NotificationID] = n
	}
	return s
}

func (s *fakeStore) GetNotificationsByAccountID(_ context.Context, accountID int) ([]*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList {
		return nil, errors.New("store unavailable")
	}
	var out []*model.Notification
	for _, n := range s.notifications {
		if n.AccountID == accountID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *fakeStore) MarkRead(_ context.Context, accountID, notificationID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markReadCalls++
	if s.failMarkRead > 0 {
		s.failMarkRead--
		return errors.New("store rejected mutation")
	}
	n, ok := s.notifications[notificationID]
	if !ok || n.AccountID != accountID {
		return cderr.ErrNotFound
	}
	n.IsRead = true
	if !n.ReadAt.Valid {
		n.ReadAt = null.TimeFrom(time.Now())
	}
	return nil
}

func (s *fakeStore) DeleteNotification(_ context.Context, accountID, notificationID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errors.New("store rejected deletion")
	}
	n, ok := s.notifications[notificationID]
	if !ok || n.AccountID != accountID {
		return cderr.ErrNotFound
	}
	delete(s.notifications, notificationID)
	return nil
}

func storedNotif(id, accountID int, kind constant.EventKind, read bool) *model.Notification {
	return &model.Notification{
		NotificationID: id,
		AccountID:      accountID,
		EventKind:      kind,
		IsRead:         read,
		CreatedAt:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
	}
}

func newTestInbox(store NotificationStore) *Inbox {
	conf := &appconfig.Config{}
	conf.MarkReadTimeout = time.Second
	conf.MarkReadAttempts = 3
	return NewInbox(conf, store, nil)
}

func TestInboxMarkRead(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(
		storedNotif(1, 7, constant.EventKindPaymentDue, false),
		storedNotif(2, 7, constant.EventKindClubInvite, false),
	)
	inbox := newTestInbox(store)
	filter := []constant.EventKind{constant.EventKindPaymentDue, constant.EventKindClubInvite}

	badge, err := inbox.Badge(ctx, 7, filter)
	require.NoError(t, err)
	require.NotNil(t, badge)
	assert.Equal(t, 2, badge.Count)
	assert.Equal(t, model.SeverityWarning, badge.Variant)

	require.NoError(t, inbox.MarkRead(ctx, 7, 1))

	// badge re-derives from the mutated canonical collection
	badge, err = inbox.Badge(ctx, 7, filter)
	require.NoError(t, err)
	require.NotNil(t, badge)
	assert.Equal(t, 1, badge.Count)
	assert.Equal(t, model.SeverityInfo, badge.Variant)
}

func TestInboxMarkReadIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(storedNotif(1, 7, constant.EventKindPaymentDue, false))
	inbox := newTestInbox(store)
	filter := []constant.EventKind{constant.EventKindPaymentDue}

	require.NoError(t, inbox.MarkRead(ctx, 7, 1))
	first, err := inbox.Snapshot(ctx, 7)
	require.NoError(t, err)
	readAt := first[0].ReadAt

	// second invocation: same final state, badge does not decrease twice
	require.NoError(t, inbox.MarkRead(ctx, 7, 1))
	second, err := inbox.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.True(t, second[0].IsRead)
	assert.Equal(t, readAt, second[0].ReadAt)
	assert.Nil(t, mustBadge(t, inbox, 7, filter))
}

func mustBadge(t *testing.T, inbox *Inbox, accountID int, filter []constant.EventKind) *model.Badge {
	t.Helper()
	badge, err := inbox.Badge(context.Background(), accountID, filter)
	require.NoError(t, err)
	return badge
}

func TestInboxMarkReadRollback(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(storedNotif(1, 7, constant.EventKindPaymentDue, false))
	store.failMarkRead = 99
	inbox := newTestInbox(store)
	filter := []constant.EventKind{constant.EventKindPaymentDue}

	err := inbox.MarkRead(ctx, 7, 1)
	require.Error(t, err)
	assert.Equal(t, cderr.ErrUpstream, err)

	// optimistic flip reverted: the badge still shows the unread item
	snapshot, err := inbox.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.False(t, snapshot[0].IsRead)
	assert.False(t, snapshot[0].ReadAt.Valid)

	badge := mustBadge(t, inbox, 7, filter)
	require.NotNil(t, badge)
	assert.Equal(t, 1, badge.Count)
}

func TestInboxMarkReadRetriesTransientFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(storedNotif(1, 7, constant.EventKindPaymentDue, false))
	store.failMarkRead = 2 // two transient failures, third attempt lands
	inbox := newTestInbox(store)

	require.NoError(t, inbox.MarkRead(ctx, 7, 1))
	assert.Equal(t, 3, store.markReadCalls)
}

func TestInboxMarkReadNotFound(t *testing.T) {
	ctx := context.Background()
	inbox := newTestInbox(newFakeStore(storedNotif(1, 7, constant.EventKindPaymentDue, false)))

	assert.Equal(t, cderr.ErrNotFound, inbox.MarkRead(ctx, 7, 999))
	// a notification belonging to another account is invisible here
	assert.Equal(t, cderr.ErrNotFound, inbox.MarkRead(ctx, 8, 1))
}

func TestInboxDismiss(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(
		storedNotif(1, 7, constant.EventKindPaymentDue, false),
		storedNotif(2, 7, constant.EventKindClubInvite, false),
	)
	inbox := newTestInbox(store)

	require.NoError(t, inbox.Dismiss(ctx, 7, 1))

	snapshot, err := inbox.Snapshot(ctx, 7)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, 2, snapshot[0].NotificationID)
}

func TestInboxDismissRollback(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(
		storedNotif(1, 7, constant.EventKindPaymentDue, false),
		storedNotif(2, 7, constant.EventKindClubInvite, false),
	)
	store.failDelete = true
	inbox := newTestInbox(store)

	before, err := inbox.Snapshot(ctx, 7)
	require.NoError(t, err)

	err = inbox.Dismiss(ctx, 7, before[0].NotificationID)
	require.Error(t, err)
	assert.Equal(t, cderr.ErrUpstream, err)

	// removal reverted, original order preserved
	after, err := inbox.Snapshot(ctx, 7)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].NotificationID, after[i].NotificationID)
	}
}

func TestInboxRefreshServesStaleOnFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(storedNotif(1, 7, constant.EventKindPaymentDue, false))
	inbox := newTestInbox(store)

	fresh, err := inbox.Refresh(ctx, 7)
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	store.mu.Lock()
	store.failList = true
	store.mu.Unlock()

	stale, err := inbox.Refresh(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, 1, stale[0].NotificationID)

	// a first load with nothing stale to fall back on surfaces the error
	_, err = inbox.Refresh(ctx, 8)
	assert.Error(t, err)
}

func TestInboxScopedAlerts(t *testing.T) {
	ctx := context.Background()
	expiring := storedNotif(1, 7, constant.EventKindMembershipExpiring, false)
	expiring.ClubID = null.IntFrom(42)
	expiring.Message = "membership expiring"
	scheduled := storedNotif(2, 7, constant.EventKindMatchScheduled, false)
	scheduled.ClubID = null.IntFrom(42)
	scheduled.Message = "match scheduled"

	inbox := newTestInbox(newFakeStore(expiring, scheduled))

	alerts, err := inbox.ScopedAlerts(ctx, 7, 42)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityWarning, alerts[0].Variant)
	assert.Equal(t, "membership expiring", alerts[0].Message)
}
