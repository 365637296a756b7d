package kafka_test

import (
	"context"
	"encoding/json"
	"staybook/config"
	"staybook/infras/kafka"
	"staybook/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "BKM1ABC123",
		Value: map[string]any{"type": "booking.created", "amount": 300},
	}

	out, err := msg.ToKafkaMessage("booking-events")
	require.NoError(t, err)

	assert.Equal(t, "booking-events", out.Topic)
	assert.Equal(t, []byte("BKM1ABC123"), out.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "booking.created", decoded["type"])

	bad := kafka.Message{Key: "k", Value: make(chan int)}
	_, err = bad.ToKafkaMessage("booking-events")
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	client := kafka.New(&config.Config{}, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), "booking-events", kafka.Message{Key: "k", Value: "v"}))
	assert.NoError(t, client.Close())
}
