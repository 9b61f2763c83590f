package eventpublisher

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	eventpublisherv1 "github.com/stockmarket/notifier/internal/domain/event-publisher/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
)

// HeaderEventType carries the event type so consumers can route without decoding.
const HeaderEventType = "event-type"

var _ stockeventv1.Publisher = (*Publisher)(nil)

// Publisher writes stock events to a Kafka topic.
type Publisher struct {
	writer eventpublisherv1.MessageWriter
	logger logger.Interface
}

// NewPublisher creates a Kafka publisher for the configured event topic.
func NewPublisher(config config.EventKafkaConfig, logger logger.Interface) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: config.BatchTimeout,
		WriteTimeout: config.WriteTimeout,
		RequiredAcks: kafka.RequireAll,
	}

	return NewPublisherWithWriter(writer, logger)
}

// NewPublisherWithWriter creates a publisher on top of writer.
func NewPublisherWithWriter(writer eventpublisherv1.MessageWriter, logger logger.Interface) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// PublishStockEvent writes event as JSON keyed by its ID.
func (p *Publisher) PublishStockEvent(ctx context.Context, event *stockeventv1.StockEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.TracerFromError(err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ID()),
		Value: value,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(event.EventType().String())},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "publish_stock_event"},
			logger.Field{Key: "event_id", Value: event.ID()},
		)
		return errors.Wrap(err, errors.StockEventPublishError, "publish stock event to kafka")
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
