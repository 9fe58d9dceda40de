// Package feedutil implements the pure aggregation engine behind the feed:
// severity classification, feed merging, and unread badge derivation. All
// functions are pure over their inputs; badge state is always re-derived
// from the canonical collection instead of being tracked incrementally.
package feedutil

import (
	"github.com/samber/lo"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

// CalculateBadge derives the badge for a navigation surface configured with
// filter, over the given notifications.
//
// A nil filter means the surface has no badge feature configured and always
// yields nil, which is distinct from "configured but nothing matched" (also
// nil) only in intent. The variant is the worst tier among the kinds
// actually present in the matched unread subset: a severe kind merely listed
// in the filter must not escalate the badge color unless an unread item of
// that kind exists.
func CalculateBadge(filter []constant.EventKind, notifications []*model.Notification) *model.Badge {
	if filter == nil {
		return nil
	}

	wanted := make(map[constant.EventKind]struct{}, len(filter))
	for _, kind := range filter {
		wanted[kind] = struct{}{}
	}

	matched := lo.Filter(notifications, func(n *model.Notification, _ int) bool {
		if n.IsRead {
			return false
		}
		_, ok := wanted[n.EventKind]
		return ok
	})
	if len(matched) == 0 {
		return nil
	}

	presentKinds := lo.Uniq(lo.Map(matched, func(n *model.Notification, _ int) constant.EventKind {
		return n.EventKind
	}))

	return &model.Badge{
		Count:   len(matched),
		Variant: worstOf(presentKinds),
	}
}

// ShouldShowBadge reports whether CalculateBadge would yield a badge. It has
// no logic of its own.
func ShouldShowBadge(filter []constant.EventKind, notifications []*model.Notification) bool {
	return CalculateBadge(filter, notifications) != nil
}

// worstOf returns the most severe tier among the given kinds ("worst wins").
// Callers guarantee kinds is non-empty.
func worstOf(kinds []constant.EventKind) model.Severity {
	worst := model.SeverityDefault
	for _, kind := range kinds {
		if s := Classify(kind); s > worst {
			worst = s
		}
	}
	return worst
}
