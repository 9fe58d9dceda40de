package sweepwkr

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"clubdesk.app/backend/internal/app/appconfig"
	"clubdesk.app/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	AnnouncementService *service.Announcement
	RedSync             *redsync.Redsync
}

type Worker struct {
	// count counts batches worker has completed so far
	count int

	// interval describes the interval in-between different batches of sweeping
	interval time.Duration

	heartbeatURL string

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("sweep worker is disabled")
		return
	}
	(&Worker{
		interval:     conf.WorkerInterval,
		heartbeatURL: conf.WorkerHeartbeatURL["sweep"],
		WorkerDeps:   deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			w.sweep(ctx)
			w.count++

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()
	return cancel
}

func (w *Worker) sweep(ctx context.Context) {
	// only one instance runs the sweep per interval
	mutex := w.RedSync.NewMutex("wkr:sweep", redsync.WithExpiry(time.Minute), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		log.Debug().Err(err).Msg("sweep lock held by another instance, skipping batch")
		return
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to unlock sweep mutex")
		}
	}()

	swept, err := w.AnnouncementService.PurgeExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to purge expired announcements")
		return
	}
	if swept > 0 {
		log.Info().Int64("swept", swept).Int("count", w.count).Msg("purged expired announcements")
	}

	w.heartbeat()
}

func (w *Worker) heartbeat() {
	if w.heartbeatURL == "" {
		return
	}

	client := http.Client{Timeout: time.Second * 5}
	resp, err := client.Get(w.heartbeatURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to send sweep worker heartbeat")
		return
	}
	resp.Body.Close()
}

func (w *Worker) Count() int {
	return w.count
}
