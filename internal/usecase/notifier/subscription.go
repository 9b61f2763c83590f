package notifier

import (
	"sync"
	"sync/atomic"

	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
)

// Subscription receives the events matching its filter. Events that do not
// fit in the buffer are dropped and counted.
type Subscription struct {
	id      string
	filter  stockeventv1.Filter
	ch      chan *stockeventv1.StockEvent
	dropped atomic.Int64

	closeOnce sync.Once
}

func newSubscription(id string, filter stockeventv1.Filter, buffer int) *Subscription {
	return &Subscription{
		id:     id,
		filter: filter,
		ch:     make(chan *stockeventv1.StockEvent, buffer),
	}
}

func (s *Subscription) ID() string {
	return s.id
}

// C returns the channel events are delivered on. It is closed on Unsubscribe.
func (s *Subscription) C() <-chan *stockeventv1.StockEvent {
	return s.ch
}

// Dropped returns how many events were discarded because the buffer was full.
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

// offer delivers event without blocking and reports whether it was accepted.
func (s *Subscription) offer(event *stockeventv1.StockEvent) bool {
	select {
	case s.ch <- event:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() {
		close(s.ch)
	})
}
