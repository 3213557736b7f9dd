package main

import (
	"context"
	"cowork/config"
	"cowork/infras/kafka"
	"cowork/internal/domains/reservation/model/dto"
	"cowork/shared/logger"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Tails the reservation topics and writes every event to the log.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)
	topics := []string{cfg.Kafka.Topics.ReservationCreated, cfg.Kafka.Topics.ReservationRenamed}

	var wg sync.WaitGroup

	for _, topic := range topics {
		wg.Add(1)

		go func() {
			defer wg.Done()

			client.Consume(ctx, cfg.Kafka.ConsumerGroup, topic, func(msg kafkaGo.Message) {
				logEvent(topic, msg)
			})
		}()
	}

	wg.Wait()
}

func logEvent(topic string, msg kafkaGo.Message) {
	event, err := kafka.DecodeMessage[dto.ReservationEvent](msg)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("Skipping malformed reservation event")

		return
	}

	log.Info().
		Str("topic", topic).
		Str("event_id", event.EventID).
		Int64("folio", event.Folio).
		Int64("room_id", event.RoomID).
		Int64("client_id", event.ClientID).
		Str("date", event.Date).
		Str("shift", event.Shift).
		Str("event_name", event.EventName).
		Time("occurred_at", event.OccurredAt).
		Msg("Reservation event")
}
