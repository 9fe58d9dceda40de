package cache

import (
	"time"

	"github.com/redis/go-redis/v9"

	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/pkg/cache"
)

// Caches bundles every cache instance in the application. It is provided
// once through the fx graph and injected where needed; caches are never
// reached through package state.
type Caches struct {
	// ActiveAnnouncements holds the unexpired announcement list shared by
	// every account's feed.
	ActiveAnnouncements *cache.Singular[[]*model.Announcement]

	// LastModifiedTime drives Last-Modified response headers, keyed by
	// resource name.
	LastModifiedTime *cache.Set[time.Time]
}

func New(client *redis.Client) *Caches {
	return &Caches{
		ActiveAnnouncements: cache.NewSingular[[]*model.Announcement]("activeAnnouncements"),
		LastModifiedTime:    cache.NewSet[time.Time](client, "lastModifiedTime#key"),
	}
}
