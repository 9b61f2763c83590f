package stockeventv1

import (
	"time"

	"github.com/oklog/ulid/v2"
	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	"github.com/stockmarket/notifier/pkg/errors"
)

// payload is the per-type content of a StockEvent. Each variant carries
// only the orders that are meaningful for its event type.
type payload interface {
	eventType() EventType
	// relevantOrders are the orders inspected by the participant and enterprise queries.
	relevantOrders() []*stockv1.StockOrder
}

type addedPayload struct {
	newOrder *stockv1.StockOrder
}

func (addedPayload) eventType() EventType { return EventTypeAdded }

func (p addedPayload) relevantOrders() []*stockv1.StockOrder {
	return []*stockv1.StockOrder{p.newOrder}
}

type removedPayload struct {
	prevOrder *stockv1.StockOrder
}

func (removedPayload) eventType() EventType { return EventTypeRemoved }

func (p removedPayload) relevantOrders() []*stockv1.StockOrder {
	return []*stockv1.StockOrder{p.prevOrder}
}

type updatedPayload struct {
	prevOrder *stockv1.StockOrder
	newOrder  *stockv1.StockOrder
}

func (updatedPayload) eventType() EventType { return EventTypeUpdated }

// Only the new value of an updated order identifies its current owner and stock.
func (p updatedPayload) relevantOrders() []*stockv1.StockOrder {
	return []*stockv1.StockOrder{p.newOrder}
}

type tradedPayload struct {
	buyOrder    *stockv1.StockOrder
	sellOrder   *stockv1.StockOrder
	tradedStock *stockv1.Stocks
}

func (tradedPayload) eventType() EventType { return EventTypeTraded }

func (p tradedPayload) relevantOrders() []*stockv1.StockOrder {
	return []*stockv1.StockOrder{p.buyOrder, p.sellOrder}
}

// StockEvent notifies observers that a stock order was added, removed,
// updated or traded. It is immutable once a factory returns it and is
// safe to share between goroutines.
type StockEvent struct {
	id         string
	occurredAt time.Time
	payload    payload

	// observable is the object that raised the event. It is never serialized.
	observable any
}

func newStockEvent(p payload, triggerer any) *StockEvent {
	return &StockEvent{
		id:         ulid.Make().String(),
		occurredAt: time.Now().UTC(),
		payload:    p,
		observable: triggerer,
	}
}

// CreateAddedStockOrderEvent creates the event raised when order is created.
func CreateAddedStockOrderEvent(order *stockv1.StockOrder, triggerer any) *StockEvent {
	return newStockEvent(addedPayload{newOrder: order}, triggerer)
}

// CreateRemovedStockOrderEvent creates the event raised when order is removed.
func CreateRemovedStockOrderEvent(order *stockv1.StockOrder, triggerer any) *StockEvent {
	return newStockEvent(removedPayload{prevOrder: order}, triggerer)
}

// CreateUpdatedStockOrderEvent creates the event raised when an order changes from prev to next.
func CreateUpdatedStockOrderEvent(prev, next *stockv1.StockOrder, triggerer any) *StockEvent {
	return newStockEvent(updatedPayload{prevOrder: prev, newOrder: next}, triggerer)
}

// CreateTradedStockOrderEvent creates the event raised when buy and sell were matched for tradedStock.
func CreateTradedStockOrderEvent(buy, sell *stockv1.StockOrder, tradedStock *stockv1.Stocks, triggerer any) *StockEvent {
	return newStockEvent(tradedPayload{buyOrder: buy, sellOrder: sell, tradedStock: tradedStock}, triggerer)
}

// ID returns the unique identifier of the event.
func (e *StockEvent) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// OccurredAt returns when the event was created.
func (e *StockEvent) OccurredAt() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.occurredAt
}

// EventType returns the kind of the event, or an empty type for a nil or zero value.
func (e *StockEvent) EventType() EventType {
	p := e.variant()
	if p == nil {
		return ""
	}
	return p.eventType()
}

// Observable returns the object that raised the event.
func (e *StockEvent) Observable() any {
	if e == nil {
		return nil
	}
	return e.observable
}

// variant returns the payload, or nil for a nil event.
func (e *StockEvent) variant() payload {
	if e == nil {
		return nil
	}
	return e.payload
}

// NewOrder returns the created order (ADDED) or the new value of an updated order (UPDATED).
func (e *StockEvent) NewOrder() *stockv1.StockOrder {
	switch p := e.variant().(type) {
	case addedPayload:
		return p.newOrder
	case updatedPayload:
		return p.newOrder
	}
	return nil
}

// PrevOrder returns the removed order (REMOVED) or the previous value of an updated order (UPDATED).
func (e *StockEvent) PrevOrder() *stockv1.StockOrder {
	switch p := e.variant().(type) {
	case removedPayload:
		return p.prevOrder
	case updatedPayload:
		return p.prevOrder
	}
	return nil
}

// BuyOrder returns the buy side of a trade.
func (e *StockEvent) BuyOrder() *stockv1.StockOrder {
	if p, ok := e.variant().(tradedPayload); ok {
		return p.buyOrder
	}
	return nil
}

// SellOrder returns the sell side of a trade.
func (e *StockEvent) SellOrder() *stockv1.StockOrder {
	if p, ok := e.variant().(tradedPayload); ok {
		return p.sellOrder
	}
	return nil
}

// TradedStock returns the lot that changed hands in a trade.
func (e *StockEvent) TradedStock() *stockv1.Stocks {
	if p, ok := e.variant().(tradedPayload); ok {
		return p.tradedStock
	}
	return nil
}

func (e *StockEvent) relevantOrders() []*stockv1.StockOrder {
	p := e.variant()
	if p == nil {
		return nil
	}
	return p.relevantOrders()
}

// IsParticipant reports whether holder placed one of the orders this event is about.
func (e *StockEvent) IsParticipant(holder *stockv1.Stockholder) bool {
	if holder == nil {
		return false
	}

	for _, order := range e.relevantOrders() {
		if order != nil && holder.Equal(order.OrderPlacer()) {
			return true
		}
	}
	return false
}

// IsFromEnterprise reports whether the stock of one of the orders this event
// is about belongs to enterprise. Names are compared by
// stockv1.NormalizeEnterprise. Orders without a stock reference never match.
func (e *StockEvent) IsFromEnterprise(enterprise string) bool {
	ok, _ := e.CheckEnterprise(enterprise)
	return ok
}

// CheckEnterprise behaves like IsFromEnterprise but also reports a
// stock_event_missing_stock error when a relevant order has no stock
// reference and no other order matched.
func (e *StockEvent) CheckEnterprise(enterprise string) (bool, error) {
	if stockv1.NormalizeEnterprise(enterprise) == "" {
		return false, nil
	}

	var missing error
	for _, order := range e.relevantOrders() {
		if order == nil {
			continue
		}

		name, ok := order.EnterpriseName()
		if !ok {
			if missing == nil {
				missing = errors.NewErrorDetailsWithObject(
					"order "+order.ID+" has no stock reference",
					errors.StockEventMissingStock.String(),
					"stocks",
					order,
				)
			}
			continue
		}

		if stockv1.SameEnterprise(enterprise, name) {
			return true, nil
		}
	}

	return false, missing
}

// Participants returns the distinct placers of the orders this event is about.
func (e *StockEvent) Participants() []*stockv1.Stockholder {
	var holders []*stockv1.Stockholder
	for _, order := range e.relevantOrders() {
		placer := order.OrderPlacer()
		if placer == nil {
			continue
		}

		seen := false
		for _, h := range holders {
			if h.Equal(placer) {
				seen = true
				break
			}
		}
		if !seen {
			holders = append(holders, placer)
		}
	}
	return holders
}

// Enterprises returns the distinct trimmed enterprise names of the orders this event is about.
func (e *StockEvent) Enterprises() []string {
	var names []string
	for _, order := range e.relevantOrders() {
		name, ok := order.EnterpriseName()
		name = stockv1.TrimEnterprise(name)
		if !ok || name == "" {
			continue
		}

		seen := false
		for _, n := range names {
			if stockv1.SameEnterprise(n, name) {
				seen = true
				break
			}
		}
		if !seen {
			names = append(names, name)
		}
	}
	return names
}
