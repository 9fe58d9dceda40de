package feedutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
)

func TestClassifyCoversAllKinds(t *testing.T) {
	// every kind the build knows must have an explicit severity entry;
	// relying on the default fallback for a known kind is a table bug.
	for _, kind := range constant.Kinds() {
		assert.True(t, classified(kind), "event kind %d has no severity table entry", kind)
	}
}

func TestClassifyUnknownKindDefaults(t *testing.T) {
	assert.Equal(t, model.SeverityDefault, Classify(constant.EventKindUnknown))
	// a kind from a future server deployment this build has never seen
	assert.Equal(t, model.SeverityDefault, Classify(constant.EventKind(9001)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		kind constant.EventKind
		want model.Severity
	}{
		{constant.EventKindMemberRejected, model.SeverityError},
		{constant.EventKindMembershipExpiring, model.SeverityWarning},
		{constant.EventKindPaymentReceived, model.SeveritySuccess},
		{constant.EventKindClubInvite, model.SeverityInfo},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Classify(test.kind), "kind %d", test.kind)
	}
}

func TestSeverityTotalOrder(t *testing.T) {
	assert.True(t, model.SeverityDefault < model.SeverityInfo)
	assert.True(t, model.SeverityInfo < model.SeveritySuccess)
	assert.True(t, model.SeveritySuccess < model.SeverityWarning)
	assert.True(t, model.SeverityWarning < model.SeverityError)
}
