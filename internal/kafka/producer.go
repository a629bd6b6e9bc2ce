package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tiendita/internal/domain"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishedEventsCounter prometheus.Counter
	publishErrorsCounter   prometheus.Counter
)

func init() {
	publishedEventsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kafka_producer_published_events_total",
		Help: "Total number of transaction events published to Kafka",
	})

	publishErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kafka_producer_publish_errors_total",
		Help: "Total number of transaction events that failed to publish",
	})
}

// Producer publishes one audit event per settled transaction. Checkout never
// waits on downstream consumers; a publish failure is logged and counted,
// nothing more.
type Producer struct {
	topic    string
	producer sarama.SyncProducer
	logger   *slog.Logger
}

func NewProducer(topic string, logger *slog.Logger, producer sarama.SyncProducer) *Producer {
	return &Producer{
		topic:    topic,
		producer: producer,
		logger:   logger,
	}
}

func (p *Producer) Publish(ctx context.Context, event domain.TransactionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		publishErrorsCounter.Inc()
		return fmt.Errorf("kafka.Publish: failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ID.String()),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		publishErrorsCounter.Inc()
		return fmt.Errorf("kafka.Publish: %w", err)
	}

	publishedEventsCounter.Inc()
	p.logger.Debug("published transaction event",
		slog.String("transaction_id", event.ID.String()),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
