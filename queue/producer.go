package queue

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher delivers reservation events. Failures are logged and returned;
// callers treat publishing as best-effort and never roll back a committed
// transition because of it.
type Publisher interface {
	PublishReservationEvent(ctx context.Context, event ReservationEvent) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) PublishReservationEvent(ctx context.Context, event ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("kafka: marshal event failed: %v", err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(uuid.NewString()),
		Value: data,
	})
	if err != nil {
		log.Printf("kafka: publish %s for reservation %d failed: %v", event.Type, event.ReservationID, err)
	}
	return err
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used in tests and when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationEvent(ctx context.Context, event ReservationEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
