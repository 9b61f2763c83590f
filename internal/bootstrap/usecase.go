package bootstrap

import (
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/internal/memory"
	eventbroadcaster "github.com/stockmarket/notifier/internal/usecase/event-broadcaster"
	eventpublisher "github.com/stockmarket/notifier/internal/usecase/event-publisher"
	"github.com/stockmarket/notifier/internal/usecase/notifier"
	stockeventUc "github.com/stockmarket/notifier/internal/usecase/stockevent"
)

// Usecase is the usecase for the stock event notifier.
type Usecase struct {
	Broadcaster *eventbroadcaster.Broadcaster
	// Publisher is nil when the event topic is disabled.
	Publisher         *eventpublisher.Publisher
	Notifier          *notifier.Notifier
	StockEventUsecase stockeventv1.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.Broadcaster = eventbroadcaster.NewBroadcaster(b.Redis, &b.Config.Redis, b.Logger)

	sinks := []stockeventv1.Publisher{b.Usecase.Broadcaster}
	if b.Config.EventKafka.Enabled {
		b.Usecase.Publisher = eventpublisher.NewPublisher(b.Config.EventKafka, b.Logger)
		sinks = append(sinks, b.Usecase.Publisher)
	}

	b.Usecase.Notifier = notifier.NewNotifier(b.Repository.StockEventRepository, b.Logger, sinks...)
	b.Usecase.StockEventUsecase = stockeventUc.NewUsecase(
		b.Usecase.Notifier,
		b.Repository.StockEventRepository,
		b.Usecase.Broadcaster,
		memory.NewOrderBook(),
		b.Logger,
	)
}
