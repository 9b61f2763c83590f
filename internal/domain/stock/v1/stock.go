package stockv1

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide represents the side of a stock order.
type OrderSide string

const (
	// OrderSideBuy represents a buy order.
	OrderSideBuy OrderSide = "BUY"
	// OrderSideSell represents a sell order.
	OrderSideSell OrderSide = "SELL"
)

// Stockholder is the party placing an order.
type Stockholder struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// NewStockholder creates a stockholder identified by id.
func NewStockholder(id, name string) *Stockholder {
	return &Stockholder{ID: id, Name: name}
}

// Equal reports whether both stockholders have the same identity.
func (s *Stockholder) Equal(other *Stockholder) bool {
	if s == nil || other == nil {
		return false
	}
	return s.ID == other.ID
}

// Stocks is a lot of shares of a single enterprise.
type Stocks struct {
	Enterprise string          `json:"enterprise"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// NewStocks creates a lot of quantity shares of enterprise valued at price.
func NewStocks(enterprise string, quantity int64, price decimal.Decimal) *Stocks {
	return &Stocks{
		Enterprise: enterprise,
		Quantity:   quantity,
		Price:      price,
	}
}

// Total returns quantity * price.
func (s *Stocks) Total() decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	return s.Price.Mul(decimal.NewFromInt(s.Quantity))
}

// StockOrder is a buy or sell request placed by a stockholder.
type StockOrder struct {
	ID        string       `json:"id"`
	Side      OrderSide    `json:"side"`
	Placer    *Stockholder `json:"placer"`
	Stocks    *Stocks      `json:"stocks"`
	CreatedAt time.Time    `json:"createdAt"`
}

// OrderPlacer returns the stockholder that placed the order.
func (o *StockOrder) OrderPlacer() *Stockholder {
	if o == nil {
		return nil
	}
	return o.Placer
}

// EnterpriseName returns the enterprise of the order's stock.
// ok is false when the order has no stock reference.
func (o *StockOrder) EnterpriseName() (name string, ok bool) {
	if o == nil || o.Stocks == nil {
		return "", false
	}
	return o.Stocks.Enterprise, true
}

// IsBuy checks if the order is a buy order.
func (o *StockOrder) IsBuy() bool {
	return o.Side == OrderSideBuy
}

// Clone returns a deep copy of the order.
func (o *StockOrder) Clone() *StockOrder {
	if o == nil {
		return nil
	}

	clone := *o
	if o.Placer != nil {
		placer := *o.Placer
		clone.Placer = &placer
	}
	if o.Stocks != nil {
		stocks := *o.Stocks
		clone.Stocks = &stocks
	}
	return &clone
}

// TrimEnterprise strips leading and trailing ASCII control characters and
// spaces from name. Other Unicode spaces, such as NBSP, are part of the name.
func TrimEnterprise(name string) string {
	return strings.TrimFunc(name, func(r rune) bool { return r <= ' ' })
}

// NormalizeEnterprise is the canonical form of an enterprise name. Every
// comparison, routing key and stored filter column goes through it.
func NormalizeEnterprise(name string) string {
	return strings.ToLower(TrimEnterprise(name))
}

// SameEnterprise compares two enterprise names by their canonical form.
func SameEnterprise(a, b string) bool {
	return NormalizeEnterprise(a) == NormalizeEnterprise(b)
}
