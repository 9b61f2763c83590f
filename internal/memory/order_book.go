package memory

import (
	"sync"

	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
)

// OrderBook keeps the open orders known to the service, keyed by order ID.
// Stored orders are shared with published events and must not be mutated;
// callers store a modified clone with Update instead.
type OrderBook struct {
	mu     sync.RWMutex
	orders map[string]*stockv1.StockOrder
}

// NewOrderBook creates an empty order book.
func NewOrderBook() *OrderBook {
	return &OrderBook{orders: make(map[string]*stockv1.StockOrder)}
}

// Add stores o, overwriting any order with the same ID.
func (b *OrderBook) Add(o *stockv1.StockOrder) {
	if o == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders[o.ID] = o
}

func (b *OrderBook) Get(id string) (*stockv1.StockOrder, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[id]
	return o, ok
}

// Remove deletes the order and returns it.
func (b *OrderBook) Remove(id string) (*stockv1.StockOrder, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if ok {
		delete(b.orders, id)
	}
	return o, ok
}

// Update applies fn to the stored order with that ID and stores its result.
// A nil result removes the order. fn runs under the book lock and only when
// the order is present; ok reports whether it was.
func (b *OrderBook) Update(id string, fn func(current *stockv1.StockOrder) *stockv1.StockOrder) (ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.orders[id]
	if !ok {
		return false
	}

	next := fn(current)
	if next == nil {
		delete(b.orders, id)
		return true
	}
	b.orders[id] = next
	return true
}

func (b *OrderBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.orders)
}
