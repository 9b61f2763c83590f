package notifier

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
)

// DefaultBuffer is used when Subscribe is called with a non-positive buffer.
const DefaultBuffer = 64

// Notifier persists stock events and delivers them to local subscribers and
// outbound sinks.
type Notifier struct {
	repository stockeventv1.Repository
	sinks      []stockeventv1.Publisher
	logger     logger.Interface

	mu            sync.RWMutex
	subscriptions map[string]*Subscription
	closed        bool
}

// NewNotifier creates a notifier storing events in repository and publishing them to sinks.
func NewNotifier(repository stockeventv1.Repository, logger logger.Interface, sinks ...stockeventv1.Publisher) *Notifier {
	return &Notifier{
		repository:    repository,
		sinks:         sinks,
		logger:        logger,
		subscriptions: make(map[string]*Subscription),
	}
}

// Subscribe registers a subscription receiving the events matching filter.
// A subscription created after Close is returned already closed.
func (n *Notifier) Subscribe(filter stockeventv1.Filter, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	sub := newSubscription(ulid.Make().String(), filter, buffer)

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		sub.close()
		return sub
	}

	n.subscriptions[sub.id] = sub
	return sub
}

// Unsubscribe removes the subscription and closes its channel.
func (n *Notifier) Unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if sub, ok := n.subscriptions[id]; ok {
		delete(n.subscriptions, id)
		sub.close()
	}
}

// Subscribers returns the number of active subscriptions.
func (n *Notifier) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscriptions)
}

// Notify stores event, fans it out to the matching subscriptions and
// publishes it to every sink. A storage failure aborts delivery. Sink
// failures do not stop the other sinks; the first one is returned
// classified as errors.StockEventPublishError.
func (n *Notifier) Notify(ctx context.Context, event *stockeventv1.StockEvent) error {
	if event == nil {
		return errors.NewErrorDetails("stock event is empty", errors.GeneralBadRequestError.String(), "event")
	}

	if err := n.repository.Store(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "store_stock_event"},
			logger.Field{Key: "event_id", Value: event.ID()},
		)
		return errors.TracerFromError(err)
	}

	n.fanOut(ctx, event)

	var firstErr error
	for _, sink := range n.sinks {
		if err := sink.PublishStockEvent(ctx, event); err != nil {
			n.logger.ErrorContext(ctx, err,
				logger.Field{Key: "action", Value: "publish_stock_event"},
				logger.Field{Key: "event_id", Value: event.ID()},
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return errors.Wrap(firstErr, errors.StockEventPublishError, "stock event stored but not delivered")
	}
	return nil
}

func (n *Notifier) fanOut(ctx context.Context, event *stockeventv1.StockEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, sub := range n.subscriptions {
		if !sub.filter.Match(event) {
			continue
		}

		if !sub.offer(event) {
			n.logger.WarnContext(ctx, "subscription buffer full, event dropped",
				logger.Field{Key: "action", Value: "fan_out_stock_event"},
				logger.Field{Key: "subscription_id", Value: sub.id},
				logger.Field{Key: "event_id", Value: event.ID()},
			)
		}
	}
}

// Close closes every subscription. Later subscriptions are returned closed.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	for id, sub := range n.subscriptions {
		delete(n.subscriptions, id)
		sub.close()
	}
}
