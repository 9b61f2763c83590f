package main

import (
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	matchconsumerv1 "github.com/stockmarket/notifier/internal/domain/match-consumer/v1"
	orderconsumerv1 "github.com/stockmarket/notifier/internal/domain/order-consumer/v1"
)

// Message is an event bound for one of the upstream topics.
type Message struct {
	Match bool
	Key   string
	Value any
}

// Generator produces a plausible stream of order book changes and trades.
type Generator struct {
	rng       *rand.Rand
	symbols   []string
	users     []string
	basePrice decimal.Decimal
	spread    float64
}

// NewGenerator creates a generator. The same seed yields the same stream.
func NewGenerator(seed uint64, symbols, users []string, basePrice, spread float64) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewPCG(seed, seed)),
		symbols:   symbols,
		users:     users,
		basePrice: decimal.NewFromFloat(basePrice),
		spread:    spread,
	}
}

// Step places a buy and a sell order on a random symbol, then either
// matches them, modifies the buy or cancels the sell.
func (g *Generator) Step(now time.Time) []Message {
	symbol := g.symbols[g.rng.IntN(len(g.symbols))]
	buyer, seller := g.pickPair()
	price := g.price()

	buy := g.order(now, orderconsumerv1.EventTypeOrderPlaced, symbol, "BUY", buyer, price)
	sell := g.order(now, orderconsumerv1.EventTypeOrderPlaced, symbol, "SELL", seller, price)
	messages := []Message{
		{Key: buy.OrderID, Value: buy},
		{Key: sell.OrderID, Value: sell},
	}

	switch r := g.rng.Float64(); {
	case r < 0.6:
		volume := 1 + g.rng.Int64N(min(buy.Quantity, sell.Quantity))
		match := matchconsumerv1.MatchEvent{
			ID:          ulid.Make().String(),
			Timestamp:   now,
			Symbol:      symbol,
			Price:       price,
			Volume:      volume,
			BuyOrderID:  buy.OrderID,
			SellOrderID: sell.OrderID,
			TakerSide:   "buy",
		}
		messages = append(messages, Message{Match: true, Key: match.ID, Value: match})
	case r < 0.8:
		modified := buy
		modified.EventID = ulid.Make().String()
		modified.EventType = orderconsumerv1.EventTypeOrderModified
		newPrice := price.Sub(decimal.NewFromInt(1))
		newQuantity := buy.Quantity + 1
		modified.NewPrice = &newPrice
		modified.NewQuantity = &newQuantity
		messages = append(messages, Message{Key: modified.OrderID, Value: modified})
	default:
		cancelled := sell
		cancelled.EventID = ulid.Make().String()
		cancelled.EventType = orderconsumerv1.EventTypeOrderCancelled
		messages = append(messages, Message{Key: cancelled.OrderID, Value: cancelled})
	}

	return messages
}

func (g *Generator) pickPair() (string, string) {
	i := g.rng.IntN(len(g.users))
	j := g.rng.IntN(len(g.users) - 1)
	if j >= i {
		j++
	}
	return g.users[i], g.users[j]
}

func (g *Generator) price() decimal.Decimal {
	offset := (g.rng.Float64() - 0.5) * g.spread
	price := g.basePrice.Add(decimal.NewFromFloat(offset)).Round(2)
	if !price.IsPositive() {
		return g.basePrice
	}
	return price
}

func (g *Generator) order(now time.Time, eventType, symbol, side, user string, price decimal.Decimal) orderconsumerv1.RawOrderEvent {
	return orderconsumerv1.RawOrderEvent{
		EventID:   ulid.Make().String(),
		Timestamp: now,
		EventType: eventType,
		OrderID:   ulid.Make().String(),
		Symbol:    symbol,
		Side:      side,
		Price:     price,
		Quantity:  1 + g.rng.Int64N(100),
		UserID:    user,
	}
}
