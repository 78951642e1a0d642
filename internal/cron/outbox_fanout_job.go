package cron

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/internal/notifications"
	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/logger"
)

const defaultFanoutBatchSize = 50

type outboxReader interface {
	FetchUnpublished(ctx context.Context, limit int) ([]models.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause error) error
}

type notificationWriter interface {
	Create(ctx context.Context, notifications []models.Notification) error
}

type fanoutFunc func(event models.OutboxEvent) ([]models.Notification, error)

// OutboxFanoutJobParams configure the notification delivery loop.
type OutboxFanoutJobParams struct {
	Logger        *logger.Logger
	Outbox        outboxReader
	Notifications notificationWriter
	BatchSize     int
	Fanout        fanoutFunc
}

// NewOutboxFanoutJob builds the cron job that turns unpublished outbox
// events into in-app notifications.
func NewOutboxFanoutJob(params OutboxFanoutJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("outbox repository required")
	}
	if params.Notifications == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = defaultFanoutBatchSize
	}
	fanout := params.Fanout
	if fanout == nil {
		fanout = notifications.Fanout
	}
	return &outboxFanoutJob{
		logg:          params.Logger,
		outbox:        params.Outbox,
		notifications: params.Notifications,
		batchSize:     batchSize,
		fanout:        fanout,
	}, nil
}

type outboxFanoutJob struct {
	logg          *logger.Logger
	outbox        outboxReader
	notifications notificationWriter
	batchSize     int
	fanout        fanoutFunc
}

func (j *outboxFanoutJob) Name() string { return "outbox-fanout" }

// Run processes one batch per cycle. A failing event is marked failed and
// skipped so it cannot wedge the rest of the batch.
func (j *outboxFanoutJob) Run(ctx context.Context) error {
	events, err := j.outbox.FetchUnpublished(ctx, j.batchSize)
	if err != nil {
		return fmt.Errorf("fetch unpublished events: %w", err)
	}

	published := 0
	failed := 0
	for _, event := range events {
		if err := j.deliver(ctx, event); err != nil {
			failed++
			eventCtx := j.logg.WithField(ctx, "event_id", event.ID)
			j.logg.Error(eventCtx, "outbox fanout failed", err)
			if markErr := j.outbox.MarkFailed(ctx, event.ID, err); markErr != nil {
				j.logg.Error(eventCtx, "failed to record fanout failure", markErr)
			}
			continue
		}
		if err := j.outbox.MarkPublished(ctx, event.ID); err != nil {
			return fmt.Errorf("mark event %s published: %w", event.ID, err)
		}
		published++
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"fetched":   len(events),
		"published": published,
		"failed":    failed,
	})
	j.logg.Info(logCtx, "outbox fanout batch complete")
	return nil
}

func (j *outboxFanoutJob) deliver(ctx context.Context, event models.OutboxEvent) error {
	rows, err := j.fanout(event)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return j.notifications.Create(ctx, rows)
}
