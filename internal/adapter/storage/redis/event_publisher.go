package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"merchant-reserve-engine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const eventChannel = "reserve-engine:events"

// EventPublisher implements ports.EventPublisher over Redis pub/sub.
// Delivery is best-effort; callers must not fail a committed mutation on a
// publish error.
type EventPublisher struct {
	client  *goredis.Client
	channel string
}

// NewEventPublisher creates a Redis-backed event publisher.
func NewEventPublisher(client *goredis.Client) *EventPublisher {
	return &EventPublisher{
		client:  client,
		channel: eventChannel,
	}
}

// Publish sends the event as JSON on the shared channel.
func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Name, err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", event.Name, err)
	}
	return nil
}
