package kafka_test

import (
	"context"
	"cowork/config"
	"cowork/infras/kafka"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	Folio int64  `json:"folio"`
	Shift string `json:"shift"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "12", Value: payload{Folio: 12, Shift: "morning"}}

	kafkaMsg, err := msg.ToKafkaMessage()

	assert.NoError(t, err)
	assert.Equal(t, []byte("12"), kafkaMsg.Key)
	assert.JSONEq(t, `{"folio":12,"shift":"morning"}`, string(kafkaMsg.Value))
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	msg := kafka.Message{Key: "1", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestDecodeMessage(t *testing.T) {
	value, err := kafka.DecodeMessage[payload](kafkaGo.Message{Value: []byte(`{"folio":3,"shift":"evening"}`)})

	assert.NoError(t, err)
	assert.Equal(t, payload{Folio: 3, Shift: "evening"}, value)

	_, err = kafka.DecodeMessage[payload](kafkaGo.Message{Value: []byte(`not json`)})
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "reservation.created", kafka.Message{Key: "1", Value: payload{}}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client.Consume(ctx, "", "reservation.created", func(_ kafkaGo.Message) {
		t.Error("handler must not be called when Kafka is disabled")
	})
}

func TestWaitRetry(t *testing.T) {
	t.Run("waits out the delay", func(t *testing.T) {
		start := time.Now()

		assert.True(t, kafka.WaitRetry(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()

		assert.False(t, kafka.WaitRetry(ctx, time.Minute))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("stops when the context expires mid wait", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.False(t, kafka.WaitRetry(ctx, time.Minute))
	})
}
