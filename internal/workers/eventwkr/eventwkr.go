package eventwkr

import (
	"context"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"clubdesk.app/backend/internal/app/appconfig"
	"clubdesk.app/backend/internal/constant"
	"clubdesk.app/backend/internal/model"
	"clubdesk.app/backend/internal/pkg/observability"
	"clubdesk.app/backend/internal/repo"
)

type WorkerDeps struct {
	fx.In
	NatsJS           nats.JetStreamContext
	NotificationRepo *repo.Notification
}

// InboundEvent is the wire shape of a domain event published by the other
// ClubDesk services. Each event fans out into one notification row for the
// addressed account.
type InboundEvent struct {
	AccountID   int                `json:"accountId"`
	EventKind   constant.EventKind `json:"eventKind"`
	Title       string             `json:"title"`
	Message     string             `json:"message"`
	ClubID      null.Int           `json:"clubId"`
	LeagueID    null.Int           `json:"leagueId"`
	CreatorID   null.Int           `json:"creatorId"`
	ActionURL   null.String        `json:"actionUrl"`
	ActionLabel null.String        `json:"actionLabel"`
	Metadata    json.RawMessage    `json:"metadata"`
}

type Worker struct {
	// count is the number of consumers spawned
	count int

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("event worker is disabled")
		return
	}

	ch := make(chan error)
	// handle & dump errors from workers
	go func() {
		for {
			err := <-ch
			if err != nil {
				log.Error().Err(err).Msg("event worker error")
			}
		}
	}()

	eventWorkers := &Worker{
		count:      0,
		WorkerDeps: deps,
	}
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			err := eventWorkers.Consumer(context.Background(), ch)
			if err != nil {
				ch <- err
			}
		}()
		eventWorkers.count += 1
	}
}

func (w *Worker) Consumer(ctx context.Context, ch chan error) error {
	msgChan := make(chan *nats.Msg, 16)

	_, err := w.NatsJS.ChanQueueSubscribe("EVENT.*", "clubdesk-events", msgChan, nats.AckWait(time.Second*10), nats.MaxAckPending(128))
	if err != nil {
		log.Err(err).Msg("failed to subscribe to EVENT.*")
		return err
	}

	for {
		select {
		case msg := <-msgChan:
			func() {
				taskCtx, cancelTask := context.WithDeadline(ctx, time.Now().Add(time.Second*10))
				defer cancelTask()

				event := &InboundEvent{}
				if err := json.Unmarshal(msg.Data, event); err != nil {
					observability.EventsConsumed.WithLabelValues("malformed").Inc()
					// a message that does not decode will never decode: drop it
					if err := msg.Term(); err != nil {
						log.Error().Err(err).Msg("failed to term malformed event")
					}
					ch <- err
					return
				}

				if err := w.consumeEvent(taskCtx, event); err != nil {
					observability.EventsConsumed.WithLabelValues("failed").Inc()
					if err := msg.Nak(); err != nil {
						log.Error().Err(err).Msg("failed to nak event")
					}
					ch <- err
					return
				}

				observability.EventsConsumed.WithLabelValues("ok").Inc()
				if err := msg.Ack(); err != nil {
					log.Error().Err(err).Msg("failed to ack event")
				}
			}()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) consumeEvent(ctx context.Context, event *InboundEvent) error {
	if event.AccountID <= 0 {
		return errors.Errorf("event missing account id: kind %d", event.EventKind)
	}
	if event.EventKind <= 0 {
		return errors.Errorf("event missing event kind: account %d", event.AccountID)
	}

	return w.NotificationRepo.CreateNotification(ctx, &model.Notification{
		AccountID:   event.AccountID,
		EventKind:   event.EventKind,
		Title:       event.Title,
		Message:     event.Message,
		ClubID:      event.ClubID,
		LeagueID:    event.LeagueID,
		CreatorID:   event.CreatorID,
		ActionURL:   event.ActionURL,
		ActionLabel: event.ActionLabel,
		Metadata:    event.Metadata,
	})
}

func (w *Worker) Count() int {
	return w.count
}
