package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	TypeEventCreated        = "event_created"
	TypeEventDeleted        = "event_deleted"
	TypeRegistrationCreated = "registration_created"
)

// Envelope is the message published on the redis channel.
type Envelope struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type RedisNotifier struct {
	client  publisher
	channel string
}

func NewRedisNotifier(ctx context.Context, url, channel string) (*RedisNotifier, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisNotifier{client: client, channel: channel}, nil
}

func (n *RedisNotifier) publish(ctx context.Context, eventType string, payload interface{}) error {
	data, err := json.Marshal(Envelope{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventType, err)
	}
	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

func (n *RedisNotifier) NotifyEventCreated(ctx context.Context, event models.Event, organizer models.User) error {
	return n.publish(ctx, TypeEventCreated, map[string]interface{}{
		"event_id":     event.ID,
		"name":         event.Name,
		"club":         event.Club,
		"domain":       event.Domain,
		"date":         event.Date,
		"venue":        event.Venue,
		"organizer_id": organizer.ID,
	})
}

func (n *RedisNotifier) NotifyEventDeleted(ctx context.Context, event models.Event) error {
	return n.publish(ctx, TypeEventDeleted, map[string]interface{}{
		"event_id": event.ID,
		"name":     event.Name,
	})
}

func (n *RedisNotifier) NotifyRegistration(ctx context.Context, user models.User, event models.Event, registration models.Registration) error {
	return n.publish(ctx, TypeRegistrationCreated, map[string]interface{}{
		"registration_id": registration.ID,
		"event_id":        event.ID,
		"user_id":         user.ID,
	})
}
