// Package events publishes booking lifecycle notifications to Kafka.
// A nil Publisher is valid and drops every event, so services never
// need to branch on whether eventing is enabled.
package events

import (
	"context"
	"skyfare/pkg/kafka"
	"skyfare/pkg/logger"
	"time"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationExpired   = "reservation.expired"
	EventBasketExpired        = "basket.expired"
)

const source = "skyfare-api"

type ReservationEvent struct {
	ReservationNumber string    `json:"reservation_number"`
	UserID            string    `json:"user_id"`
	TotalPrice        float64   `json:"total_price,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type BasketEvent struct {
	BasketID   string    `json:"basket_id"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

// NewPublisher wraps a producer. Pass a nil producer to disable
// publishing entirely.
func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	if producer == nil {
		return nil
	}
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

func (p *Publisher) ReservationCreated(ctx context.Context, number, userID string, totalPrice float64) {
	p.publishReservation(ctx, EventReservationCreated, number, userID, totalPrice)
}

func (p *Publisher) ReservationConfirmed(ctx context.Context, number, userID string, totalPrice float64) {
	p.publishReservation(ctx, EventReservationConfirmed, number, userID, totalPrice)
}

func (p *Publisher) ReservationExpired(ctx context.Context, number, userID string) {
	p.publishReservation(ctx, EventReservationExpired, number, userID, 0)
}

func (p *Publisher) BasketExpired(ctx context.Context, basketID, userID string) {
	if p == nil {
		return
	}

	event := BasketEvent{
		BasketID:   basketID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	p.publish(ctx, EventBasketExpired, userID, event)
}

func (p *Publisher) publishReservation(ctx context.Context, eventType, number, userID string, totalPrice float64) {
	if p == nil {
		return
	}

	event := ReservationEvent{
		ReservationNumber: number,
		UserID:            userID,
		TotalPrice:        totalPrice,
		OccurredAt:        time.Now().UTC(),
	}
	p.publish(ctx, eventType, userID, event)
}

// publish is best-effort: a broker outage must never fail the booking
// operation that triggered the event.
func (p *Publisher) publish(ctx context.Context, eventType, key string, event any) {
	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(event).
		WithEventType(eventType).
		WithSource(source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish event", "event_type", eventType, "error", err)
		return
	}

	p.log.Debug("Event published", "event_type", eventType, "key", key)
}
