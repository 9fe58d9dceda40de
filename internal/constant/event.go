package constant

// EventKind is the category code of a feed item. The codespace is owned by
// the ClubDesk platform services and is append-only: codes are never reused
// or renumbered. Kinds unknown to the current build must still round-trip
// through storage and classify to the default severity tier.
type EventKind int

const (
	EventKindUnknown EventKind = 0

	// membership
	EventKindMemberJoinRequest  EventKind = 1
	EventKindMemberApproved     EventKind = 2
	EventKindMemberRejected     EventKind = 3
	EventKindMembershipExpiring EventKind = 4
	EventKindMembershipExpired  EventKind = 5

	// matches
	EventKindMatchScheduled    EventKind = 6
	EventKindMatchCancelled    EventKind = 7
	EventKindMatchResultPosted EventKind = 8

	// payments
	EventKindPaymentDue      EventKind = 9
	EventKindPaymentFailed   EventKind = 10
	EventKindPaymentReceived EventKind = 11

	// misc
	EventKindClubInvite        EventKind = 12
	EventKindDocumentExpiring  EventKind = 13
	EventKindSystemMaintenance EventKind = 14
)

// Kinds returns every event kind known to this build, in code order.
// Keep this list in sync with the const block above: the severity table
// exhaustiveness test iterates it.
func Kinds() []EventKind {
	return []EventKind{
		EventKindMemberJoinRequest,
		EventKindMemberApproved,
		EventKindMemberRejected,
		EventKindMembershipExpiring,
		EventKindMembershipExpired,
		EventKindMatchScheduled,
		EventKindMatchCancelled,
		EventKindMatchResultPosted,
		EventKindPaymentDue,
		EventKindPaymentFailed,
		EventKindPaymentReceived,
		EventKindClubInvite,
		EventKindDocumentExpiring,
		EventKindSystemMaintenance,
	}
}
