package stockevent

import (
	"context"
	"strings"

	matchconsumerv1 "github.com/stockmarket/notifier/internal/domain/match-consumer/v1"
	orderconsumerv1 "github.com/stockmarket/notifier/internal/domain/order-consumer/v1"
	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/internal/memory"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
)

// Usecase creates stock events from upstream order and match events and
// hands them to the dispatcher. It is the observable of every event it raises.
type Usecase struct {
	dispatcher stockeventv1.Dispatcher
	repository stockeventv1.Repository
	cache      stockeventv1.Cache
	book       *memory.OrderBook
	logger     logger.Interface
}

// NewUsecase creates a new stock event usecase.
func NewUsecase(
	dispatcher stockeventv1.Dispatcher,
	repository stockeventv1.Repository,
	cache stockeventv1.Cache,
	book *memory.OrderBook,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		dispatcher: dispatcher,
		repository: repository,
		cache:      cache,
		book:       book,
		logger:     logger,
	}
}

// OrderAdded raises an ADDED event for order.
func (u *Usecase) OrderAdded(ctx context.Context, order *stockv1.StockOrder) (*stockeventv1.StockEvent, error) {
	return u.dispatch(ctx, stockeventv1.CreateAddedStockOrderEvent(order, u))
}

// OrderRemoved raises a REMOVED event for order.
func (u *Usecase) OrderRemoved(ctx context.Context, order *stockv1.StockOrder) (*stockeventv1.StockEvent, error) {
	return u.dispatch(ctx, stockeventv1.CreateRemovedStockOrderEvent(order, u))
}

// OrderUpdated raises an UPDATED event for an order that changed from prev to next.
func (u *Usecase) OrderUpdated(ctx context.Context, prev, next *stockv1.StockOrder) (*stockeventv1.StockEvent, error) {
	return u.dispatch(ctx, stockeventv1.CreateUpdatedStockOrderEvent(prev, next, u))
}

// OrderTraded raises a TRADED event for a match between buy and sell.
func (u *Usecase) OrderTraded(ctx context.Context, buy, sell *stockv1.StockOrder, traded *stockv1.Stocks) (*stockeventv1.StockEvent, error) {
	return u.dispatch(ctx, stockeventv1.CreateTradedStockOrderEvent(buy, sell, traded, u))
}

func (u *Usecase) dispatch(ctx context.Context, event *stockeventv1.StockEvent) (*stockeventv1.StockEvent, error) {
	if err := u.dispatcher.Notify(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// HandleOrderEvent turns an upstream order event into an ADDED, REMOVED or
// UPDATED stock event. The order book is only changed once the event was
// dispatched, so a failed attempt leaves the book as it was. Modifications
// apply to orders still in the book only.
func (u *Usecase) HandleOrderEvent(ctx context.Context, event *orderconsumerv1.RawOrderEvent) error {
	if event == nil {
		return errors.NewErrorDetails("order event is empty", errors.GeneralBadRequestError.String(), "event")
	}

	switch event.EventType {
	case orderconsumerv1.EventTypeOrderPlaced:
		order, err := orderFromEvent(event)
		if err != nil {
			return err
		}
		if _, err := u.OrderAdded(ctx, order); err != nil {
			return err
		}
		u.book.Add(order)

	case orderconsumerv1.EventTypeOrderCancelled:
		order, ok := u.book.Get(event.OrderID)
		if !ok {
			u.logger.WarnContext(ctx, "cancelled order is not in the book",
				logger.Field{Key: "action", Value: "handle_order_cancelled"},
				logger.Field{Key: "order_id", Value: event.OrderID},
			)
			order, _ = orderFromEvent(event)
		}
		if _, err := u.OrderRemoved(ctx, order); err != nil {
			return err
		}
		u.book.Remove(event.OrderID)

	case orderconsumerv1.EventTypeOrderModified:
		prev, ok := u.book.Get(event.OrderID)
		if !ok {
			u.logger.WarnContext(ctx, "modified order is not in the book",
				logger.Field{Key: "action", Value: "handle_order_modified"},
				logger.Field{Key: "order_id", Value: event.OrderID},
			)
			prev, _ = orderFromEvent(event)
		}

		next := applyModification(prev, event)
		if _, err := u.OrderUpdated(ctx, prev, next); err != nil {
			return err
		}
		u.book.Update(event.OrderID, func(current *stockv1.StockOrder) *stockv1.StockOrder {
			return applyModification(current, event)
		})

	default:
		return errors.NewErrorDetailsWithObject(
			"unsupported order event type "+event.EventType,
			errors.OrderEventUnknownType.String(),
			"event_type",
			event,
		)
	}

	return nil
}

// HandleMatchEvent raises a TRADED event for a match between two orders of
// the book. Orders unknown to the book are reported as nil. Filled orders
// leave the book and partially filled ones keep their remaining quantity.
func (u *Usecase) HandleMatchEvent(ctx context.Context, event *matchconsumerv1.MatchEvent) error {
	if event == nil || event.Volume <= 0 {
		return errors.NewErrorDetailsWithObject(
			"match event has no traded volume",
			errors.MatchEventInvalid.String(),
			"volume",
			event,
		)
	}

	buy := u.lookup(ctx, event.BuyOrderID)
	sell := u.lookup(ctx, event.SellOrderID)
	traded := stockv1.NewStocks(event.Symbol, event.Volume, event.Price)

	if _, err := u.OrderTraded(ctx, buy, sell, traded); err != nil {
		return err
	}

	u.fill(buy, event.Volume)
	u.fill(sell, event.Volume)
	return nil
}

func (u *Usecase) lookup(ctx context.Context, orderID string) *stockv1.StockOrder {
	order, ok := u.book.Get(orderID)
	if !ok {
		u.logger.WarnContext(ctx, "matched order is not in the book",
			logger.Field{Key: "action", Value: "handle_match"},
			logger.Field{Key: "order_id", Value: orderID},
		)
		return nil
	}
	return order
}

// fill deducts volume from the order as currently stored, dropping it when
// nothing remains. Orders removed since the lookup stay removed.
func (u *Usecase) fill(order *stockv1.StockOrder, volume int64) {
	if order == nil {
		return
	}

	u.book.Update(order.ID, func(current *stockv1.StockOrder) *stockv1.StockOrder {
		if current.Stocks == nil || current.Stocks.Quantity <= volume {
			return nil
		}

		next := current.Clone()
		next.Stocks.Quantity -= volume
		return next
	})
}

// ListEvents reads the event log and keeps the events matching filter.
func (u *Usecase) ListEvents(ctx context.Context, listFilter stockeventv1.ListFilter, filter stockeventv1.Filter) ([]*stockeventv1.StockEvent, error) {
	events, err := u.repository.List(ctx, listFilter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	matched := make([]*stockeventv1.StockEvent, 0, len(events))
	for _, event := range events {
		if filter.Match(event) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// LatestForEnterprise returns the most recent event of enterprise.
func (u *Usecase) LatestForEnterprise(ctx context.Context, enterprise string) (*stockeventv1.StockEvent, error) {
	enterprise = stockv1.TrimEnterprise(enterprise)
	if enterprise == "" {
		return nil, errors.NewErrorDetails("enterprise is required", errors.GeneralBadRequestError.String(), "enterprise")
	}

	return u.cache.Latest(ctx, enterprise)
}

func orderFromEvent(event *orderconsumerv1.RawOrderEvent) (*stockv1.StockOrder, error) {
	side, err := parseSide(event.Side)
	if err != nil {
		return nil, err
	}

	return &stockv1.StockOrder{
		ID:        event.OrderID,
		Side:      side,
		Placer:    stockv1.NewStockholder(event.UserID, event.UserName),
		Stocks:    stockv1.NewStocks(event.Symbol, event.Quantity, event.Price),
		CreatedAt: event.Timestamp,
	}, nil
}

func applyModification(prev *stockv1.StockOrder, event *orderconsumerv1.RawOrderEvent) *stockv1.StockOrder {
	next := prev.Clone()
	if next == nil {
		next = &stockv1.StockOrder{ID: event.OrderID}
	}
	if next.Stocks == nil {
		next.Stocks = stockv1.NewStocks(event.Symbol, event.Quantity, event.Price)
	}

	if event.NewPrice != nil {
		next.Stocks.Price = *event.NewPrice
	}
	if event.NewQuantity != nil {
		next.Stocks.Quantity = *event.NewQuantity
	}
	return next
}

func parseSide(side string) (stockv1.OrderSide, error) {
	switch strings.ToUpper(strings.TrimSpace(side)) {
	case string(stockv1.OrderSideBuy):
		return stockv1.OrderSideBuy, nil
	case string(stockv1.OrderSideSell):
		return stockv1.OrderSideSell, nil
	}

	return "", errors.NewErrorDetails("unsupported order side "+side, errors.GeneralBadRequestError.String(), "side")
}
