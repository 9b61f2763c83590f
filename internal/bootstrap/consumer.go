package bootstrap

import "github.com/stockmarket/notifier/internal/consumer"

// Consumer holds the Kafka consumers feeding the usecase.
type Consumer struct {
	OrderConsumer *consumer.OrderConsumer
	MatchConsumer *consumer.MatchConsumer
}

// registerConsumer registers the consumers.
func (b *Bootstrap) registerConsumer() {
	b.Consumer.OrderConsumer = consumer.NewOrderConsumer(b.Config.OrderKafka, b.Usecase.StockEventUsecase, b.Logger)
	b.Consumer.MatchConsumer = consumer.NewMatchConsumer(b.Config.MatchKafka, b.Usecase.StockEventUsecase, b.Logger)
}
