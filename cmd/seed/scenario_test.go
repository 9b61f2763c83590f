package main

import (
	"testing"
	"time"

	matchconsumerv1 "github.com/stockmarket/notifier/internal/domain/match-consumer/v1"
	orderconsumerv1 "github.com/stockmarket/notifier/internal/domain/order-consumer/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Step(t *testing.T) {
	gen := NewGenerator(42, []string{"ACME", "GLOBEX"}, []string{"alice", "bob"}, 100, 10)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		messages := gen.Step(now)
		require.Len(t, messages, 3)

		buy, ok := messages[0].Value.(orderconsumerv1.RawOrderEvent)
		require.True(t, ok)
		sell, ok := messages[1].Value.(orderconsumerv1.RawOrderEvent)
		require.True(t, ok)

		assert.Equal(t, "BUY", buy.Side)
		assert.Equal(t, "SELL", sell.Side)
		assert.NotEqual(t, buy.UserID, sell.UserID)
		assert.Equal(t, buy.Symbol, sell.Symbol)
		assert.True(t, buy.Price.IsPositive())
		assert.Positive(t, buy.Quantity)

		switch v := messages[2].Value.(type) {
		case matchconsumerv1.MatchEvent:
			seen["match"]++
			assert.True(t, messages[2].Match)
			assert.Equal(t, buy.OrderID, v.BuyOrderID)
			assert.Equal(t, sell.OrderID, v.SellOrderID)
			assert.LessOrEqual(t, v.Volume, min(buy.Quantity, sell.Quantity))
			assert.Positive(t, v.Volume)
		case orderconsumerv1.RawOrderEvent:
			seen[v.EventType]++
			assert.False(t, messages[2].Match)
			switch v.EventType {
			case orderconsumerv1.EventTypeOrderModified:
				assert.Equal(t, buy.OrderID, v.OrderID)
				require.NotNil(t, v.NewQuantity)
				assert.Equal(t, buy.Quantity+1, *v.NewQuantity)
			case orderconsumerv1.EventTypeOrderCancelled:
				assert.Equal(t, sell.OrderID, v.OrderID)
			default:
				t.Fatalf("unexpected event type %s", v.EventType)
			}
		default:
			t.Fatalf("unexpected message %T", v)
		}
	}

	assert.Positive(t, seen["match"])
	assert.Positive(t, seen[orderconsumerv1.EventTypeOrderModified])
	assert.Positive(t, seen[orderconsumerv1.EventTypeOrderCancelled])
}
