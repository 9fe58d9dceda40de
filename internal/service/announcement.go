package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/model/cache"
	"clubdesk.app/backend/internal/repo"
)

type Announcement struct {
	AnnouncementRepo *repo.Announcement
	Caches           *cache.Caches
}

func NewAnnouncement(announcementRepo *repo.Announcement, caches *cache.Caches) *Announcement {
	return &Announcement{
		AnnouncementRepo: announcementRepo,
		Caches:           caches,
	}
}

// Cache: ActiveAnnouncements, 1hr
func (s *Announcement) GetActiveAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	var announcements []*model.Announcement
	err := s.Caches.ActiveAnnouncements.MutexGetSet(&announcements, func() ([]*model.Announcement, error) {
		return s.AnnouncementRepo.GetActiveAnnouncements(ctx)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	// the cached slice may outlive individual expiries between sweeps
	return stillActive(announcements, time.Now()), nil
}

func stillActive(announcements []*model.Announcement, now time.Time) []*model.Announcement {
	return lo.Reject(announcements, func(a *model.Announcement, _ int) bool {
		return a.Expired(now)
	})
}

func (s *Announcement) CreateAnnouncement(ctx context.Context, announcement *model.Announcement) error {
	if err := s.AnnouncementRepo.CreateAnnouncement(ctx, announcement); err != nil {
		return err
	}
	return s.flush()
}

// PurgeExpired deletes announcements past their expiry and reports the swept
// row count. The cache is only flushed when something was actually removed.
func (s *Announcement) PurgeExpired(ctx context.Context) (int64, error) {
	swept, err := s.AnnouncementRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if swept > 0 {
		if err := s.flush(); err != nil {
			return swept, err
		}
	}
	return swept, nil
}

func (s *Announcement) flush() error {
	if err := s.Caches.ActiveAnnouncements.Delete(); err != nil {
		return err
	}
	return s.Caches.LastModifiedTime.Set("[announcements]", time.Now(), 0)
}
