// Package kafka publishes domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

// envelope is the wire format of one published event. The event name travels
// next to the payload so consumers can route without decoding it.
type envelope struct {
	Name       string       `json:"name"`
	OccurredAt time.Time    `json:"occurredAt"`
	Payload    events.Event `json:"payload"`
}

// Publisher delivers domain events to a Kafka topic. Delivery is best
// effort: failures are logged, never returned, so a broker outage cannot
// fail a business operation that already committed.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger.With("component", "kafka-publisher"),
	}
}

// Publish writes the events to the topic, keyed by event name so consumers
// interested in one kind can partition on it.
func (p *Publisher) Publish(ctx context.Context, evts ...events.Event) {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		value, err := json.Marshal(envelope{
			Name:       evt.Name(),
			OccurredAt: time.Now().UTC(),
			Payload:    evt,
		})
		if err != nil {
			p.logger.Error("failed to encode event", "event", evt.Name(), "error", err)
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.Name()),
			Value: value,
		})
	}

	if len(messages) == 0 {
		return
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error("failed to publish events", "count", len(messages), "error", err)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
