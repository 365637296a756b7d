package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"staybook/config"
	"staybook/infras/kafka"
	"staybook/internal/domains/booking/model"
	"staybook/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeCreated   = "booking.created"
	TypeCancelled = "booking.cancelled"

	defaultTopic = "booking-events"
)

type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"bookingId"`
	Reference   string    `json:"bookingReference"`
	CustomerID  string    `json:"customerId"`
	HotelID     string    `json:"hotelId"`
	Status      string    `json:"bookingStatus"`
	TotalAmount float64   `json:"totalAmount"`
	CheckIn     time.Time `json:"checkInDate"`
	CheckOut    time.Time `json:"checkOutDate"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func newBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		CustomerID:  booking.CustomerID,
		HotelID:     booking.HotelID,
		Status:      string(booking.BookingStatus),
		TotalAmount: booking.TotalAmount,
		CheckIn:     booking.CheckInDate,
		CheckOut:    booking.CheckOutDate,
		OccurredAt:  timezone.Now(),
	}
}

// Publisher announces booking lifecycle changes. Publishing never fails the caller.
type Publisher interface {
	Created(ctx context.Context, booking model.Booking)
	Cancelled(ctx context.Context, booking model.Booking)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
}

func New(client kafka.Client, cfg *config.Config) Publisher {
	topic := cfg.Kafka.Topic.BookingEvents
	if topic == "" {
		topic = defaultTopic
	}

	return &publisherImpl{
		client: client,
		topic:  topic,
	}
}

func (p *publisherImpl) Created(ctx context.Context, booking model.Booking) {
	p.publish(ctx, newBookingEvent(TypeCreated, booking))
}

func (p *publisherImpl) Cancelled(ctx context.Context, booking model.Booking) {
	p.publish(ctx, newBookingEvent(TypeCancelled, booking))
}

// publish keys messages by booking id so every event of one booking lands on the same partition.
func (p *publisherImpl) publish(ctx context.Context, evt BookingEvent) {
	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: evt.BookingID, Value: evt})
	if err != nil {
		log.Error().Err(err).Str("type", evt.Type).Str("booking_id", evt.BookingID).Msg("failed to publish booking event")
	}
}
