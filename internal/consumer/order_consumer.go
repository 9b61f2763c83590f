package consumer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	messagereaderv1 "github.com/stockmarket/notifier/internal/domain/message-reader/v1"
	orderconsumerv1 "github.com/stockmarket/notifier/internal/domain/order-consumer/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/logger"
)

// OrderConsumer turns order book changes into stock events.
type OrderConsumer struct {
	loop
	usecase stockeventv1.Usecase
}

// NewOrderConsumer creates an OrderConsumer reading the configured order topic.
func NewOrderConsumer(config config.OrderKafkaConfig, usecase stockeventv1.Usecase, logger logger.Interface) *OrderConsumer {
	return NewOrderConsumerWithReader(newReader(config.Brokers, config.Topic, config.ConsumerGroup), usecase, logger)
}

// NewOrderConsumerWithReader creates an OrderConsumer on top of reader.
func NewOrderConsumerWithReader(reader messagereaderv1.MessageReader, usecase stockeventv1.Usecase, logger logger.Interface) *OrderConsumer {
	c := &OrderConsumer{usecase: usecase}
	c.loop = loop{
		name:        "order_consumer",
		reader:      reader,
		logger:      logger,
		retryDelay:  fetchRetryDelay,
		maxAttempts: handleAttempts,
		process:     c.processOrderMessage,
	}
	return c
}

// Start reads messages in the background until ctx is cancelled.
func (c *OrderConsumer) Start(ctx context.Context) {
	go c.run(ctx)
}

// Stop closes the reader.
func (c *OrderConsumer) Stop(ctx context.Context) error {
	c.logger.InfoContext(ctx, "stopping order consumer")
	return c.reader.Close()
}

func (c *OrderConsumer) processOrderMessage(ctx context.Context, msg kafka.Message) error {
	var event orderconsumerv1.RawOrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return decodeError{err: err}
	}

	c.logger.DebugContext(ctx, "processing order event",
		logger.Field{Key: "eventID", Value: event.EventID},
		logger.Field{Key: "eventType", Value: event.EventType},
		logger.Field{Key: "orderID", Value: event.OrderID},
	)

	return c.usecase.HandleOrderEvent(ctx, &event)
}
