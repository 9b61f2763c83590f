package stockeventv1

import (
	"encoding/json"
	"time"

	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	"github.com/stockmarket/notifier/pkg/errors"
)

// wireEvent is the serialized shape of a StockEvent. The observable is
// process-local and has no place on the wire.
type wireEvent struct {
	ID          string              `json:"id"`
	EventType   EventType           `json:"eventType"`
	OccurredAt  time.Time           `json:"occurredAt"`
	NewOrder    *stockv1.StockOrder `json:"newOrder,omitempty"`
	PrevOrder   *stockv1.StockOrder `json:"prevOrder,omitempty"`
	BuyOrder    *stockv1.StockOrder `json:"buyOrder,omitempty"`
	SellOrder   *stockv1.StockOrder `json:"sellOrder,omitempty"`
	TradedStock *stockv1.Stocks     `json:"tradedStock,omitempty"`
}

// MarshalJSON encodes the event type and the orders relevant to it.
func (e *StockEvent) MarshalJSON() ([]byte, error) {
	if e.variant() == nil {
		return nil, errors.NewErrorDetails(
			"stock event has no event type",
			errors.StockEventUnknownType.String(),
			"eventType",
		)
	}

	return json.Marshal(wireEvent{
		ID:          e.ID(),
		EventType:   e.EventType(),
		OccurredAt:  e.OccurredAt(),
		NewOrder:    e.NewOrder(),
		PrevOrder:   e.PrevOrder(),
		BuyOrder:    e.BuyOrder(),
		SellOrder:   e.SellOrder(),
		TradedStock: e.TradedStock(),
	})
}

// UnmarshalJSON decodes an event produced by MarshalJSON. The decoded event
// has no observable.
func (e *StockEvent) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var p payload
	switch w.EventType {
	case EventTypeAdded:
		p = addedPayload{newOrder: w.NewOrder}
	case EventTypeRemoved:
		p = removedPayload{prevOrder: w.PrevOrder}
	case EventTypeUpdated:
		p = updatedPayload{prevOrder: w.PrevOrder, newOrder: w.NewOrder}
	case EventTypeTraded:
		p = tradedPayload{buyOrder: w.BuyOrder, sellOrder: w.SellOrder, tradedStock: w.TradedStock}
	default:
		return errors.NewErrorDetails(
			"unknown stock event type "+string(w.EventType),
			errors.StockEventUnknownType.String(),
			"eventType",
		)
	}

	*e = StockEvent{
		id:         w.ID,
		occurredAt: w.OccurredAt,
		payload:    p,
	}
	return nil
}
