// Package events publishes lifecycle events for committed mutations.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"photofolio/internal/kafka/producer"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
)

// Publisher serializes events onto a producer. Delivery is best-effort: the
// mutation already happened, so failures are logged and dropped. A nil
// producer turns every Publish into a no-op.
type Publisher struct {
	log      *slog.Logger
	producer producer.ProducerIface
	now      func() time.Time
}

func NewPublisher(log *slog.Logger, p producer.ProducerIface) *Publisher {
	return &Publisher{
		log:      log,
		producer: p,
		now:      time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, ev models.Event) {
	const op = "events.Publisher.Publish"

	if p == nil || p.producer == nil {
		return
	}

	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = p.now().UTC()
	}

	msg, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("failed to marshal event", slog.String("op", op), slog.String("type", ev.Type), sl.Err(err))
		return
	}

	if err = p.producer.SendMessage(ctx, key(ev), msg); err != nil {
		p.log.Warn("failed to publish event", slog.String("op", op), slog.String("type", ev.Type), sl.Err(err))
	}
}

func key(ev models.Event) []byte {
	if ev.ImageID != nil {
		return []byte(ev.ImageID.String())
	}
	return []byte(ev.OwnerID)
}
