package feedutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

func notif(id int, kind constant.EventKind, read bool) *model.Notification {
	return &model.Notification{
		NotificationID: id,
		EventKind:      kind,
		IsRead:         read,
	}
}

func TestCalculateBadgeNilFilter(t *testing.T) {
	items := []*model.Notification{
		notif(1, constant.EventKindPaymentFailed, false),
	}
	// nil filter means the surface has no badge configured, regardless of
	// what the collection holds
	assert.Nil(t, CalculateBadge(nil, items))
	assert.False(t, ShouldShowBadge(nil, items))
}

func TestCalculateBadgeReadItemDoesNotEscalate(t *testing.T) {
	// the unread item is warning-tier; the error-tier item is read and must
	// contribute neither to the count nor to the variant
	items := []*model.Notification{
		notif(1, constant.EventKindMembershipExpiring, false),
		notif(2, constant.EventKindMemberRejected, true),
	}
	filter := []constant.EventKind{
		constant.EventKindMemberRejected,
		constant.EventKindMembershipExpiring,
	}

	badge := CalculateBadge(filter, items)
	require.NotNil(t, badge)
	assert.Equal(t, 1, badge.Count)
	assert.Equal(t, model.SeverityWarning, badge.Variant)
}

func TestCalculateBadgeAllRead(t *testing.T) {
	items := []*model.Notification{
		notif(1, constant.EventKindMembershipExpiring, true),
		notif(2, constant.EventKindMemberRejected, true),
	}
	filter := []constant.EventKind{
		constant.EventKindMemberRejected,
		constant.EventKindMembershipExpiring,
	}

	// absence, never a zero-count badge
	assert.Nil(t, CalculateBadge(filter, items))
	assert.False(t, ShouldShowBadge(filter, items))
}

func TestCalculateBadgeVariantUsesPresentKindsOnly(t *testing.T) {
	// filter declares an error-tier kind, but no unread item of that kind
	// exists; the badge must stay at the tier of what is actually present
	items := []*model.Notification{
		notif(1, constant.EventKindMatchScheduled, false),
		notif(2, constant.EventKindClubInvite, false),
	}
	filter := []constant.EventKind{
		constant.EventKindPaymentFailed,
		constant.EventKindMatchScheduled,
		constant.EventKindClubInvite,
	}

	badge := CalculateBadge(filter, items)
	require.NotNil(t, badge)
	assert.Equal(t, 2, badge.Count)
	assert.Equal(t, model.SeverityInfo, badge.Variant)
}

func TestCalculateBadgeWorstWins(t *testing.T) {
	items := []*model.Notification{
		notif(1, constant.EventKindMatchScheduled, false),
		notif(2, constant.EventKindPaymentDue, false),
		notif(3, constant.EventKindPaymentFailed, false),
	}
	filter := []constant.EventKind{
		constant.EventKindMatchScheduled,
		constant.EventKindPaymentDue,
		constant.EventKindPaymentFailed,
	}

	badge := CalculateBadge(filter, items)
	require.NotNil(t, badge)
	assert.Equal(t, 3, badge.Count)
	assert.Equal(t, model.SeverityError, badge.Variant)
}

func TestCalculateBadgeSingleKindFilter(t *testing.T) {
	items := []*model.Notification{
		notif(1, constant.EventKindPaymentDue, false),
		notif(2, constant.EventKindPaymentDue, false),
		notif(3, constant.EventKindClubInvite, false),
	}

	badge := CalculateBadge([]constant.EventKind{constant.EventKindPaymentDue}, items)
	require.NotNil(t, badge)
	assert.Equal(t, 2, badge.Count)
	assert.Equal(t, model.SeverityWarning, badge.Variant)
}

func TestCalculateBadgeEmptyFilter(t *testing.T) {
	items := []*model.Notification{
		notif(1, constant.EventKindPaymentDue, false),
	}
	// configured with an empty kind set: nothing can match
	assert.Nil(t, CalculateBadge([]constant.EventKind{}, items))
}

func TestCalculateBadgeUnknownKindGetsDefaultVariant(t *testing.T) {
	future := constant.EventKind(9001)
	items := []*model.Notification{notif(1, future, false)}

	badge := CalculateBadge([]constant.EventKind{future}, items)
	require.NotNil(t, badge)
	assert.Equal(t, 1, badge.Count)
	assert.Equal(t, model.SeverityDefault, badge.Variant)
}

func TestCalculateBadgeCountMatchesSubsetExactly(t *testing.T) {
	var items []*model.Notification
	for i := 1; i <= 7; i++ {
		items = append(items, notif(i, constant.EventKindPaymentDue, i%2 == 0))
	}
	items = append(items, notif(8, constant.EventKindMatchScheduled, false))

	badge := CalculateBadge([]constant.EventKind{constant.EventKindPaymentDue}, items)
	require.NotNil(t, badge)
	// ids 1, 3, 5, 7 are unread payment-due
	assert.Equal(t, 4, badge.Count)
}
