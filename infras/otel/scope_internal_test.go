package otel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestToAttribute(t *testing.T) {
	checkIn := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "BK-1", want: attribute.StringValue("BK-1")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(12), want: attribute.Int64Value(12)},
		{name: "float64", value: 4599.5, want: attribute.Float64Value(4599.5)},
		{name: "string slice", value: []string{"wifi", "pool"}, want: attribute.StringSliceValue([]string{"wifi", "pool"})},
		{name: "time", value: checkIn, want: attribute.StringValue("2026-05-01T00:00:00Z")},
		{name: "fallback", value: struct{ N int }{N: 2}, want: attribute.StringValue("{2}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("k", tt.value)

			assert.Equal(t, attribute.Key("k"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

func TestScope_RecordsErrorAndAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	impl := &otelImpl{provider: provider}

	_, scope := impl.NewScope(t.Context(), "booking", "booking.Create")
	scope.SetAttributes(map[string]any{"booking.nights": 3})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("room type unavailable"))
	scope.End()

	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "booking.Create", spans[0].Name())
		assert.Equal(t, "room type unavailable", spans[0].Status().Description)
		assert.Contains(t, spans[0].Attributes(), attribute.Int("booking.nights", 3))
	}

	assert.NoError(t, impl.Shutdown(t.Context()))
}
