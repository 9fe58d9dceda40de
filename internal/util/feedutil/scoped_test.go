package feedutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

func clubNotif(id, clubID int, kind constant.EventKind, read bool, message string) *model.Notification {
	n := notif(id, kind, read)
	n.ClubID = null.IntFrom(int64(clubID))
	n.Message = message
	return n
}

func TestScopedCriticalInfoTierRestriction(t *testing.T) {
	// one info-tier and one warning-tier unread item, both owned by club 42:
	// only the warning-tier survives, and it carries the warning variant
	items := []*model.Notification{
		clubNotif(1, 42, constant.EventKindMatchScheduled, false, "match scheduled"),
		clubNotif(2, 42, constant.EventKindMembershipExpiring, false, "membership expiring"),
	}

	alerts := ScopedCriticalInfo(42, items)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityWarning, alerts[0].Variant)
	assert.Equal(t, "membership expiring", alerts[0].Message)
}

func TestScopedCriticalInfoSharedWorstVariant(t *testing.T) {
	items := []*model.Notification{
		clubNotif(1, 7, constant.EventKindMembershipExpiring, false, "membership expiring"),
		clubNotif(2, 7, constant.EventKindPaymentFailed, false, "payment failed"),
	}

	alerts := ScopedCriticalInfo(7, items)
	require.Len(t, alerts, 2)
	// every entry takes the aggregate worst tier, including the one whose
	// own kind is only warning-tier
	for _, alert := range alerts {
		assert.Equal(t, model.SeverityError, alert.Variant)
	}
}

func TestScopedCriticalInfoScoping(t *testing.T) {
	unowned := notif(4, constant.EventKindPaymentFailed, false)
	unowned.Message = "payment failed, no club"

	items := []*model.Notification{
		clubNotif(1, 7, constant.EventKindPaymentFailed, false, "club 7 payment failed"),
		clubNotif(2, 8, constant.EventKindPaymentFailed, false, "club 8 payment failed"),
		clubNotif(3, 7, constant.EventKindPaymentFailed, true, "club 7 already read"),
		unowned,
	}

	alerts := ScopedCriticalInfo(7, items)
	require.Len(t, alerts, 1)
	assert.Equal(t, "club 7 payment failed", alerts[0].Message)
}

func TestScopedCriticalInfoEmpty(t *testing.T) {
	items := []*model.Notification{
		clubNotif(1, 7, constant.EventKindMatchScheduled, false, "info only"),
		clubNotif(2, 7, constant.EventKindPaymentFailed, true, "read"),
	}

	assert.Nil(t, ScopedCriticalInfo(7, items))
	assert.Nil(t, ScopedCriticalInfo(7, nil))
}
