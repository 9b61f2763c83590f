package stockeventv1

import (
	"context"
	"time"

	matchconsumerv1 "github.com/stockmarket/notifier/internal/domain/match-consumer/v1"
	orderconsumerv1 "github.com/stockmarket/notifier/internal/domain/order-consumer/v1"
	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Publisher hands events to an outbound sink.
type Publisher interface {
	PublishStockEvent(ctx context.Context, event *StockEvent) error
}

// Dispatcher delivers an event to every interested observer.
type Dispatcher interface {
	Notify(ctx context.Context, event *StockEvent) error
}

// ListFilter narrows a read from the event log. Holder and Enterprise
// select events whose relevant orders were placed by that holder or are
// for that enterprise. From is inclusive and To exclusive.
type ListFilter struct {
	EventTypes []EventType
	Holder     string
	Enterprise string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Repository is the persistent event log.
type Repository interface {
	Store(ctx context.Context, event *StockEvent) error
	GetByID(ctx context.Context, id string) (*StockEvent, error)
	List(ctx context.Context, filter ListFilter) ([]*StockEvent, error)
}

// Cache keeps the latest event of every enterprise.
type Cache interface {
	Latest(ctx context.Context, enterprise string) (*StockEvent, error)
}

// Usecase creates stock events and routes them to the dispatcher.
type Usecase interface {
	OrderAdded(ctx context.Context, order *stockv1.StockOrder) (*StockEvent, error)
	OrderRemoved(ctx context.Context, order *stockv1.StockOrder) (*StockEvent, error)
	OrderUpdated(ctx context.Context, prev, next *stockv1.StockOrder) (*StockEvent, error)
	OrderTraded(ctx context.Context, buy, sell *stockv1.StockOrder, traded *stockv1.Stocks) (*StockEvent, error)
	HandleOrderEvent(ctx context.Context, event *orderconsumerv1.RawOrderEvent) error
	HandleMatchEvent(ctx context.Context, event *matchconsumerv1.MatchEvent) error
	ListEvents(ctx context.Context, listFilter ListFilter, filter Filter) ([]*StockEvent, error)
	LatestForEnterprise(ctx context.Context, enterprise string) (*StockEvent, error)
}
