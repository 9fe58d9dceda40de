package feedutil

import (
	"github.com/samber/lo"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

// ScopedCriticalInfo derives the per-club critical info panel: unread
// notifications owned by clubID whose kind classifies to warning or error.
// Informational and success tiers never surface here; the panel exists to
// flag items requiring action, not general activity. Returns nil when no
// notification survives both filters.
//
// Every returned entry carries the aggregate worst variant of the whole
// surviving set rather than its own tier. This mirrors the shipped product
// behavior exactly; treat any change here as a product decision, not a
// cleanup.
func ScopedCriticalInfo(clubID int, notifications []*model.Notification) []*model.ScopedAlert {
	surviving := lo.Filter(notifications, func(n *model.Notification, _ int) bool {
		if n.IsRead {
			return false
		}
		if !n.ClubID.Valid || int(n.ClubID.Int64) != clubID {
			return false
		}
		return Classify(n.EventKind) >= model.SeverityWarning
	})
	if len(surviving) == 0 {
		return nil
	}

	variant := worstOf(lo.Uniq(lo.Map(surviving, func(n *model.Notification, _ int) constant.EventKind {
		return n.EventKind
	})))

	return lo.Map(surviving, func(n *model.Notification, _ int) *model.ScopedAlert {
		return &model.ScopedAlert{
			Variant: variant,
			Message: n.Message,
		}
	})
}
