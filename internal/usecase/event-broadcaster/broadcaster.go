package eventbroadcaster

import (
	"context"
	"encoding/json"
	"time"

	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stockmarket/notifier/pkg/redis"
)

var (
	_ stockeventv1.Publisher = (*Broadcaster)(nil)
	_ stockeventv1.Cache     = (*Broadcaster)(nil)
)

// Broadcaster publishes stock events on Redis channels and keeps the
// latest event of every enterprise.
type Broadcaster struct {
	client    redis.Client
	prefix    string
	latestTTL time.Duration
	logger    logger.Interface
}

// NewBroadcaster creates a broadcaster using the key prefix and TTL of config.
func NewBroadcaster(client redis.Client, config *redis.Config, logger logger.Interface) *Broadcaster {
	return &Broadcaster{
		client:    client,
		prefix:    config.PrefixKey,
		latestTTL: config.LatestTTL,
		logger:    logger,
	}
}

// EnterpriseChannel is the channel events of enterprise are published on.
func (b *Broadcaster) EnterpriseChannel(enterprise string) string {
	return b.prefix + "enterprise:" + stockv1.NormalizeEnterprise(enterprise)
}

// HolderChannel is the channel events involving holderID are published on.
func (b *Broadcaster) HolderChannel(holderID string) string {
	return b.prefix + "holder:" + holderID
}

// LatestKey is the key holding the latest event of enterprise.
func (b *Broadcaster) LatestKey(enterprise string) string {
	return b.prefix + "latest:" + stockv1.NormalizeEnterprise(enterprise)
}

// PublishStockEvent sends event to the channel of every enterprise and
// participant it involves and records it as the enterprise's latest event.
// Every target is attempted and the first failure is returned.
func (b *Broadcaster) PublishStockEvent(ctx context.Context, event *stockeventv1.StockEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.TracerFromError(err)
	}

	var firstErr error
	record := func(err error, target string) {
		if err == nil {
			return
		}
		b.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "broadcast_stock_event"},
			logger.Field{Key: "event_id", Value: event.ID()},
			logger.Field{Key: "target", Value: target},
		)
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, enterprise := range event.Enterprises() {
		channel := b.EnterpriseChannel(enterprise)
		_, err := b.client.Publish(ctx, channel, payload)
		record(err, channel)

		key := b.LatestKey(enterprise)
		record(b.client.Set(ctx, key, payload, b.latestTTL), key)
	}

	for _, holder := range event.Participants() {
		channel := b.HolderChannel(holder.ID)
		_, err := b.client.Publish(ctx, channel, payload)
		record(err, channel)
	}

	return firstErr
}

// Latest returns the last event broadcast for enterprise.
func (b *Broadcaster) Latest(ctx context.Context, enterprise string) (*stockeventv1.StockEvent, error) {
	value, ok, err := b.client.Get(ctx, b.LatestKey(enterprise))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewErrorDetails("no stock event for "+enterprise, errors.StockEventNotFound.String(), "enterprise")
	}

	event := &stockeventv1.StockEvent{}
	if err := json.Unmarshal([]byte(value), event); err != nil {
		return nil, errors.TracerFromError(err)
	}
	return event, nil
}
