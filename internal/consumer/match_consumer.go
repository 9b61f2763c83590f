package consumer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	matchconsumerv1 "github.com/stockmarket/notifier/internal/domain/match-consumer/v1"
	messagereaderv1 "github.com/stockmarket/notifier/internal/domain/message-reader/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/logger"
)

// MatchConsumer turns executed trades into TRADED stock events.
type MatchConsumer struct {
	loop
	usecase stockeventv1.Usecase
}

// NewMatchConsumer creates a MatchConsumer reading the configured match topic.
func NewMatchConsumer(config config.MatchKafkaConfig, usecase stockeventv1.Usecase, logger logger.Interface) *MatchConsumer {
	return NewMatchConsumerWithReader(newReader(config.Brokers, config.Topic, config.ConsumerGroup), usecase, logger)
}

// NewMatchConsumerWithReader creates a MatchConsumer on top of reader.
func NewMatchConsumerWithReader(reader messagereaderv1.MessageReader, usecase stockeventv1.Usecase, logger logger.Interface) *MatchConsumer {
	c := &MatchConsumer{usecase: usecase}
	c.loop = loop{
		name:        "match_consumer",
		reader:      reader,
		logger:      logger,
		retryDelay:  fetchRetryDelay,
		maxAttempts: handleAttempts,
		process:     c.processMatchMessage,
	}
	return c
}

// Start reads messages in the background until ctx is cancelled.
func (c *MatchConsumer) Start(ctx context.Context) {
	go c.run(ctx)
}

// Stop closes the reader.
func (c *MatchConsumer) Stop(ctx context.Context) error {
	c.logger.InfoContext(ctx, "stopping match consumer")
	return c.reader.Close()
}

func (c *MatchConsumer) processMatchMessage(ctx context.Context, msg kafka.Message) error {
	var event matchconsumerv1.MatchEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return decodeError{err: err}
	}

	c.logger.DebugContext(ctx, "processing match event",
		logger.Field{Key: "matchID", Value: event.ID},
		logger.Field{Key: "symbol", Value: event.Symbol},
		logger.Field{Key: "volume", Value: event.Volume},
	)

	return c.usecase.HandleMatchEvent(ctx, &event)
}
