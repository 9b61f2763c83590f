package matchconsumerv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchEvent represents a match event from the matching engine.
type MatchEvent struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Symbol      string          `json:"symbol"`
	Price       decimal.Decimal `json:"price"`
	Volume      int64           `json:"volume"`
	BuyOrderID  string          `json:"buy_order_id"`
	SellOrderID string          `json:"sell_order_id"`
	TakerSide   string          `json:"taker_side"` // "buy" or "sell"
}
