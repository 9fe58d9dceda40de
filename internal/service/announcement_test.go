package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/model"
)

func TestStillActiveDropsExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	evergreen := broadcastAnn(1, now.Add(-time.Hour))
	upcoming := broadcastAnn(2, now.Add(-time.Hour))
	upcoming.ExpireAt = null.TimeFrom(now.Add(time.Hour))
	lapsed := broadcastAnn(3, now.Add(-time.Hour))
	lapsed.ExpireAt = null.TimeFrom(now.Add(-time.Minute))

	active := stillActive([]*model.Announcement{evergreen, lapsed, upcoming}, now)

	// expiry is honored even while the row waits for the next sweep,
	// original order preserved
	assert.Equal(t, []*model.Announcement{evergreen, upcoming}, active)
}

func TestStillActiveEmpty(t *testing.T) {
	now := time.Now()
	assert.Empty(t, stillActive(nil, now))

	lapsed := broadcastAnn(1, now.Add(-time.Hour))
	lapsed.ExpireAt = null.TimeFrom(now.Add(-time.Minute))
	assert.Empty(t, stillActive([]*model.Announcement{lapsed}, now))
}
