package otel_test

import (
	"context"
	"cowork/infras/otel"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type shift string

func TestAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "folio stays an integer", value: int64(42), want: attribute.Int64Value(42)},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "morning", want: attribute.StringValue("morning")},
		{name: "reservation date", value: time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC), want: attribute.StringValue("2024-06-13")},
		{name: "string slice", value: []string{"morning", "evening"}, want: attribute.StringSliceValue([]string{"morning", "evening"})},
		{name: "named string type", value: shift("evening"), want: attribute.StringValue("evening")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := otel.Attribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

func TestScope_RecordsOnSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("cowork").Start(context.Background(), "service.reservation.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"reservation.room_id": int64(3),
		"reservation.shift":   "morning",
	})
	scope.SetAttribute("reservation.folio", int64(1))
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("shift already reserved"))
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, attribute.Int64Value(3), attrs["reservation.room_id"])
	assert.Equal(t, attribute.StringValue("morning"), attrs["reservation.shift"])
	assert.Equal(t, attribute.Int64Value(1), attrs["reservation.folio"])
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "shift already reserved", ended[0].Status().Description)
}
