package bootstrap

import (
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	stockeventInfra "github.com/stockmarket/notifier/internal/infrastructure/postgresql/stockevent"
)

// Repository is the repository for the stock event notifier.
type Repository struct {
	StockEventRepository stockeventv1.Repository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.StockEventRepository = stockeventInfra.NewRepository(b.Postgres, b.Logger)
}
