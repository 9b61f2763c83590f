package orderconsumerv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order event types published by the order management service.
const (
	EventTypeOrderPlaced    = "order_placed"
	EventTypeOrderCancelled = "order_cancelled"
	EventTypeOrderModified  = "order_modified"
)

// RawOrderEvent represents a raw order event from the order management service.
type RawOrderEvent struct {
	EventID   string          `json:"event_id"`
	Timestamp time.Time       `json:"timestamp"`
	EventType string          `json:"event_type"` // "order_placed", "order_cancelled", "order_modified"
	OrderID   string          `json:"order_id"`
	Symbol    string          `json:"symbol"`
	Side      string          `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name,omitempty"`

	// For modifications
	NewPrice    *decimal.Decimal `json:"new_price,omitempty"`
	NewQuantity *int64           `json:"new_quantity,omitempty"`
}
