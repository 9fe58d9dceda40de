package feedutil

import (
	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

// severities maps every event kind this build knows to its badge tier.
// The codespace itself is owned by the platform services and is append-only;
// kinds added server-side ahead of a client deployment are absent here and
// classify to SeverityDefault. TestClassifyCoversAllKinds keeps this table
// in lockstep with constant.Kinds().
var severities = map[constant.EventKind]model.Severity{
	constant.EventKindMemberJoinRequest:  model.SeverityInfo,
	constant.EventKindMemberApproved:     model.SeveritySuccess,
	constant.EventKindMemberRejected:     model.SeverityError,
	constant.EventKindMembershipExpiring: model.SeverityWarning,
	constant.EventKindMembershipExpired:  model.SeverityError,
	constant.EventKindMatchScheduled:     model.SeverityInfo,
	constant.EventKindMatchCancelled:     model.SeverityError,
	constant.EventKindMatchResultPosted:  model.SeveritySuccess,
	constant.EventKindPaymentDue:         model.SeverityWarning,
	constant.EventKindPaymentFailed:      model.SeverityError,
	constant.EventKindPaymentReceived:    model.SeveritySuccess,
	constant.EventKindClubInvite:         model.SeverityInfo,
	constant.EventKindDocumentExpiring:   model.SeverityWarning,
	constant.EventKindSystemMaintenance:  model.SeverityInfo,
}

// Classify resolves the severity tier of an event kind. It is total: kinds
// absent from the table resolve to SeverityDefault rather than failing.
func Classify(kind constant.EventKind) model.Severity {
	return severities[kind]
}

// classified reports whether the kind has an explicit table entry, as
// opposed to falling through to the default tier.
func classified(kind constant.EventKind) bool {
	_, ok := severities[kind]
	return ok
}
