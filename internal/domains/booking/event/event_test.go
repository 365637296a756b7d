package event_test

import (
	"context"
	"errors"
	"staybook/config"
	"staybook/infras/kafka"
	kafkaMocks "staybook/infras/kafka/mocks"
	"staybook/internal/domains/booking/event"
	"staybook/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher(t *testing.T) {
	booking := model.Booking{ID: "booking-1", Reference: "BKABC123XYZ789", BookingStatus: model.StatusCancelled, TotalAmount: 12000}

	tests := []struct {
		name    string
		topic   string
		publish func(p event.Publisher)
		want    string
		sendErr error
	}{
		{
			name:    "created on the default topic",
			publish: func(p event.Publisher) { p.Created(context.Background(), booking) },
			want:    event.TypeCreated,
		},
		{
			name:    "cancelled on a configured topic",
			topic:   "staybook.bookings",
			publish: func(p event.Publisher) { p.Cancelled(context.Background(), booking) },
			want:    event.TypeCancelled,
		},
		{
			name:    "send failures are swallowed",
			publish: func(p event.Publisher) { p.Created(context.Background(), booking) },
			want:    event.TypeCreated,
			sendErr: errors.New("broker unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)

			cfg := &config.Config{}
			cfg.Kafka.Topic.BookingEvents = tt.topic

			wantTopic := tt.topic
			if wantTopic == "" {
				wantTopic = "booking-events"
			}

			client.EXPECT().SendMessages(gomock.Any(), wantTopic, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, messages ...kafka.Message) error {
					if assert.Len(t, messages, 1) {
						assert.Equal(t, "booking-1", messages[0].Key)

						evt, ok := messages[0].Value.(event.BookingEvent)
						if assert.True(t, ok) {
							assert.Equal(t, tt.want, evt.Type)
							assert.Equal(t, "BKABC123XYZ789", evt.Reference)
							assert.False(t, evt.OccurredAt.IsZero())
						}
					}

					return tt.sendErr
				})

			tt.publish(event.New(client, cfg))
		})
	}
}
