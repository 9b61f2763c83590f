package stockevent

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	matchconsumerv1 "github.com/stockmarket/notifier/internal/domain/match-consumer/v1"
	orderconsumerv1 "github.com/stockmarket/notifier/internal/domain/order-consumer/v1"
	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	stockeventMock "github.com/stockmarket/notifier/internal/domain/stockevent/v1/mock"
	"github.com/stockmarket/notifier/internal/memory"
	"github.com/stockmarket/notifier/pkg/errors"
	loggerMock "github.com/stockmarket/notifier/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	dispatcher *stockeventMock.MockDispatcher
	repository *stockeventMock.MockRepository
	cache      *stockeventMock.MockCache
	logger     *loggerMock.MockInterface
}

func setup(t *testing.T, book *memory.OrderBook) (*Usecase, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		dispatcher: stockeventMock.NewMockDispatcher(ctrl),
		repository: stockeventMock.NewMockRepository(ctrl),
		cache:      stockeventMock.NewMockCache(ctrl),
		logger:     loggerMock.NewMockInterface(ctrl),
	}
	return NewUsecase(m.dispatcher, m.repository, m.cache, book, m.logger), m
}

func bookOrder(id string, side stockv1.OrderSide, holder string, qty int64) *stockv1.StockOrder {
	return &stockv1.StockOrder{
		ID:     id,
		Side:   side,
		Placer: stockv1.NewStockholder(holder, ""),
		Stocks: stockv1.NewStocks("ACME", qty, decimal.NewFromInt(100)),
	}
}

func TestUsecase_OrderFactories(t *testing.T) {
	order := bookOrder("o-1", stockv1.OrderSideBuy, "alice", 10)

	t.Run("added", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *stockeventv1.StockEvent) error {
				assert.Equal(t, stockeventv1.EventTypeAdded, event.EventType())
				assert.Same(t, order, event.NewOrder())
				assert.Same(t, uc, event.Observable())
				return nil
			})

		event, err := uc.OrderAdded(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, stockeventv1.EventTypeAdded, event.EventType())
	})

	t.Run("removed", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		event, err := uc.OrderRemoved(context.Background(), order)
		require.NoError(t, err)
		assert.Same(t, order, event.PrevOrder())
	})

	t.Run("updated", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		next := order.Clone()
		event, err := uc.OrderUpdated(context.Background(), order, next)
		require.NoError(t, err)
		assert.Same(t, order, event.PrevOrder())
		assert.Same(t, next, event.NewOrder())
	})

	t.Run("traded", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		sell := bookOrder("o-2", stockv1.OrderSideSell, "bob", 10)
		lot := stockv1.NewStocks("ACME", 10, decimal.NewFromInt(100))
		event, err := uc.OrderTraded(context.Background(), order, sell, lot)
		require.NoError(t, err)
		assert.Same(t, lot, event.TradedStock())
	})

	t.Run("dispatch error", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(stderrors.New("boom"))

		event, err := uc.OrderAdded(context.Background(), order)
		assert.Error(t, err)
		assert.Nil(t, event)
	})
}

func TestUsecase_HandleOrderEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	newPrice := decimal.NewFromInt(105)
	newQty := int64(4)

	testCases := []struct {
		name     string
		book     func() *memory.OrderBook
		event    *orderconsumerv1.RawOrderEvent
		mockFn   func(t *testing.T, m mocks)
		assertFn func(t *testing.T, book *memory.OrderBook, err error)
	}{
		{
			name: "order placed",
			book: memory.NewOrderBook,
			event: &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderPlaced,
				OrderID:   "o-1",
				Symbol:    "ACME",
				Side:      "buy",
				Price:     decimal.NewFromInt(100),
				Quantity:  10,
				UserID:    "alice",
				Timestamp: now,
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *stockeventv1.StockEvent) error {
						assert.Equal(t, stockeventv1.EventTypeAdded, event.EventType())
						assert.Equal(t, stockv1.OrderSideBuy, event.NewOrder().Side)
						assert.True(t, event.IsParticipant(stockv1.NewStockholder("alice", "")))
						assert.True(t, event.IsFromEnterprise("acme"))
						assert.Equal(t, now, event.NewOrder().CreatedAt)
						return nil
					})
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.NoError(t, err)
				_, ok := book.Get("o-1")
				assert.True(t, ok)
			},
		},
		{
			name: "order placed with unknown side",
			book: memory.NewOrderBook,
			event: &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderPlaced,
				OrderID:   "o-1",
				Side:      "hold",
			},
			mockFn: func(t *testing.T, m mocks) {},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError.String()))
				assert.Equal(t, 0, book.Len())
			},
		},
		{
			name: "order placed but dispatch fails",
			book: memory.NewOrderBook,
			event: &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderPlaced,
				OrderID:   "o-1",
				Side:      "sell",
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, book.Len())
			},
		},
		{
			name: "order cancelled",
			book: func() *memory.OrderBook {
				book := memory.NewOrderBook()
				book.Add(bookOrder("o-1", stockv1.OrderSideBuy, "alice", 10))
				return book
			},
			event: &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderCancelled,
				OrderID:   "o-1",
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *stockeventv1.StockEvent) error {
						assert.Equal(t, stockeventv1.EventTypeRemoved, event.EventType())
						assert.Equal(t, "o-1", event.PrevOrder().ID)
						assert.Equal(t, int64(10), event.PrevOrder().Stocks.Quantity)
						return nil
					})
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, book.Len())
			},
		},
		{
			name: "order cancelled but unknown to the book",
			book: memory.NewOrderBook,
			event: &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderCancelled,
				OrderID:   "o-9",
				Side:      "sell",
				Symbol:    "ACME",
				UserID:    "bob",
			},
			mockFn: func(t *testing.T, m mocks) {
				m.logger.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *stockeventv1.StockEvent) error {
						assert.Equal(t, "o-9", event.PrevOrder().ID)
						assert.True(t, event.IsParticipant(stockv1.NewStockholder("bob", "")))
						return nil
					})
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "order modified",
			book: func() *memory.OrderBook {
				book := memory.NewOrderBook()
				book.Add(bookOrder("o-1", stockv1.OrderSideBuy, "alice", 10))
				return book
			},
			event: &orderconsumerv1.RawOrderEvent{
				EventType:   orderconsumerv1.EventTypeOrderModified,
				OrderID:     "o-1",
				NewPrice:    &newPrice,
				NewQuantity: &newQty,
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *stockeventv1.StockEvent) error {
						assert.Equal(t, stockeventv1.EventTypeUpdated, event.EventType())
						assert.Equal(t, int64(10), event.PrevOrder().Stocks.Quantity)
						assert.Equal(t, int64(4), event.NewOrder().Stocks.Quantity)
						assert.True(t, newPrice.Equal(event.NewOrder().Stocks.Price))
						assert.True(t, decimal.NewFromInt(100).Equal(event.PrevOrder().Stocks.Price))
						return nil
					})
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.NoError(t, err)
				order, ok := book.Get("o-1")
				require.True(t, ok)
				assert.Equal(t, int64(4), order.Stocks.Quantity)
			},
		},
		{
			name: "order modified but dispatch fails",
			book: func() *memory.OrderBook {
				book := memory.NewOrderBook()
				book.Add(bookOrder("o-1", stockv1.OrderSideBuy, "alice", 10))
				return book
			},
			event: &orderconsumerv1.RawOrderEvent{
				EventType:   orderconsumerv1.EventTypeOrderModified,
				OrderID:     "o-1",
				NewQuantity: &newQty,
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				assert.Error(t, err)
				order, _ := book.Get("o-1")
				assert.Equal(t, int64(10), order.Stocks.Quantity)
			},
		},
		{
			name: "unknown event type",
			book: memory.NewOrderBook,
			event: &orderconsumerv1.RawOrderEvent{
				EventType: "order_filled",
				OrderID:   "o-1",
			},
			mockFn: func(t *testing.T, m mocks) {},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, errors.OrderEventUnknownType.String()))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			book := testCase.book()
			uc, m := setup(t, book)
			testCase.mockFn(t, m)

			err := uc.HandleOrderEvent(context.Background(), testCase.event)
			testCase.assertFn(t, book, err)
		})
	}
}

func TestUsecase_HandleMatchEvent(t *testing.T) {
	newBook := func() *memory.OrderBook {
		book := memory.NewOrderBook()
		book.Add(bookOrder("b-1", stockv1.OrderSideBuy, "alice", 10))
		book.Add(bookOrder("s-1", stockv1.OrderSideSell, "bob", 4))
		return book
	}

	testCases := []struct {
		name     string
		event    *matchconsumerv1.MatchEvent
		mockFn   func(t *testing.T, m mocks)
		assertFn func(t *testing.T, book *memory.OrderBook, err error)
	}{
		{
			name: "partial and full fill",
			event: &matchconsumerv1.MatchEvent{
				ID:          "m-1",
				Symbol:      "ACME",
				Price:       decimal.NewFromInt(100),
				Volume:      4,
				BuyOrderID:  "b-1",
				SellOrderID: "s-1",
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *stockeventv1.StockEvent) error {
						assert.Equal(t, stockeventv1.EventTypeTraded, event.EventType())
						assert.Equal(t, "b-1", event.BuyOrder().ID)
						assert.Equal(t, "s-1", event.SellOrder().ID)
						assert.Equal(t, int64(10), event.BuyOrder().Stocks.Quantity)
						assert.Equal(t, int64(4), event.TradedStock().Quantity)
						assert.Equal(t, "ACME", event.TradedStock().Enterprise)
						assert.True(t, event.IsParticipant(stockv1.NewStockholder("bob", "")))
						return nil
					})
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.NoError(t, err)
				buy, ok := book.Get("b-1")
				require.True(t, ok)
				assert.Equal(t, int64(6), buy.Stocks.Quantity)
				_, ok = book.Get("s-1")
				assert.False(t, ok)
			},
		},
		{
			name: "unknown order",
			event: &matchconsumerv1.MatchEvent{
				Symbol:      "ACME",
				Volume:      1,
				BuyOrderID:  "b-1",
				SellOrderID: "s-9",
			},
			mockFn: func(t *testing.T, m mocks) {
				m.logger.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *stockeventv1.StockEvent) error {
						assert.NotNil(t, event.BuyOrder())
						assert.Nil(t, event.SellOrder())
						return nil
					})
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.NoError(t, err)
				buy, _ := book.Get("b-1")
				assert.Equal(t, int64(9), buy.Stocks.Quantity)
			},
		},
		{
			name:   "no volume",
			event:  &matchconsumerv1.MatchEvent{BuyOrderID: "b-1", SellOrderID: "s-1"},
			mockFn: func(t *testing.T, m mocks) {},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, errors.MatchEventInvalid.String()))
				assert.Equal(t, 2, book.Len())
			},
		},
		{
			name: "dispatch fails",
			event: &matchconsumerv1.MatchEvent{
				Volume:      4,
				BuyOrderID:  "b-1",
				SellOrderID: "s-1",
			},
			mockFn: func(t *testing.T, m mocks) {
				m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, book *memory.OrderBook, err error) {
				assert.Error(t, err)
				assert.Equal(t, 2, book.Len())
				buy, _ := book.Get("b-1")
				assert.Equal(t, int64(10), buy.Stocks.Quantity)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			book := newBook()
			uc, m := setup(t, book)
			testCase.mockFn(t, m)

			err := uc.HandleMatchEvent(context.Background(), testCase.event)
			testCase.assertFn(t, book, err)
		})
	}
}

func TestUsecase_HandleMatchEvent_InterleavedOrderEvent(t *testing.T) {
	newQty := int64(8)
	match := &matchconsumerv1.MatchEvent{
		Symbol:      "ACME",
		Price:       decimal.NewFromInt(100),
		Volume:      4,
		BuyOrderID:  "b-1",
		SellOrderID: "s-1",
	}

	testCases := []struct {
		name       string
		orderEvent *orderconsumerv1.RawOrderEvent
		assertFn   func(t *testing.T, book *memory.OrderBook)
	}{
		{
			name: "cancel during a partial fill",
			orderEvent: &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderCancelled,
				OrderID:   "b-1",
			},
			assertFn: func(t *testing.T, book *memory.OrderBook) {
				_, ok := book.Get("b-1")
				assert.False(t, ok)
				assert.Equal(t, 0, book.Len())
			},
		},
		{
			name: "modification during a partial fill",
			orderEvent: &orderconsumerv1.RawOrderEvent{
				EventType:   orderconsumerv1.EventTypeOrderModified,
				OrderID:     "b-1",
				NewQuantity: &newQty,
			},
			assertFn: func(t *testing.T, book *memory.OrderBook) {
				buy, ok := book.Get("b-1")
				require.True(t, ok)
				assert.Equal(t, int64(4), buy.Stocks.Quantity)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			book := memory.NewOrderBook()
			book.Add(bookOrder("b-1", stockv1.OrderSideBuy, "alice", 10))
			book.Add(bookOrder("s-1", stockv1.OrderSideSell, "bob", 4))

			uc, m := setup(t, book)
			m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, event *stockeventv1.StockEvent) error {
					if event.EventType() == stockeventv1.EventTypeTraded {
						require.NoError(t, uc.HandleOrderEvent(ctx, testCase.orderEvent))
					}
					return nil
				}).Times(2)

			require.NoError(t, uc.HandleMatchEvent(context.Background(), match))
			testCase.assertFn(t, book)
		})
	}
}

func TestUsecase_ConcurrentConsumers(t *testing.T) {
	book := memory.NewOrderBook()
	for i := 0; i < 20; i++ {
		book.Add(bookOrder(fmt.Sprintf("b-%d", i), stockv1.OrderSideBuy, "alice", 10))
		book.Add(bookOrder(fmt.Sprintf("s-%d", i), stockv1.OrderSideSell, "bob", 10))
	}

	uc, m := setup(t, book)
	m.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.logger.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			assert.NoError(t, uc.HandleOrderEvent(context.Background(), &orderconsumerv1.RawOrderEvent{
				EventType: orderconsumerv1.EventTypeOrderCancelled,
				OrderID:   fmt.Sprintf("b-%d", i),
			}))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			assert.NoError(t, uc.HandleMatchEvent(context.Background(), &matchconsumerv1.MatchEvent{
				Symbol:      "ACME",
				Volume:      3,
				BuyOrderID:  fmt.Sprintf("b-%d", i),
				SellOrderID: fmt.Sprintf("s-%d", i),
			}))
		}
	}()
	wg.Wait()

	for i := 0; i < 20; i++ {
		_, ok := book.Get(fmt.Sprintf("b-%d", i))
		assert.False(t, ok, "cancelled order b-%d came back", i)
		sell, ok := book.Get(fmt.Sprintf("s-%d", i))
		require.True(t, ok)
		assert.Equal(t, int64(7), sell.Stocks.Quantity)
	}
}

func TestUsecase_ListEvents(t *testing.T) {
	alice := stockv1.NewStockholder("alice", "")
	aliceEvent := stockeventv1.CreateAddedStockOrderEvent(bookOrder("o-1", stockv1.OrderSideBuy, "alice", 1), nil)
	bobEvent := stockeventv1.CreateAddedStockOrderEvent(bookOrder("o-2", stockv1.OrderSideBuy, "bob", 1), nil)
	listFilter := stockeventv1.ListFilter{Limit: 10}

	t.Run("filters by holder", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.repository.EXPECT().List(gomock.Any(), listFilter).Return([]*stockeventv1.StockEvent{aliceEvent, bobEvent}, nil)

		events, err := uc.ListEvents(context.Background(), listFilter, stockeventv1.Filter{Holder: alice})
		require.NoError(t, err)
		assert.Equal(t, []*stockeventv1.StockEvent{aliceEvent}, events)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.repository.EXPECT().List(gomock.Any(), listFilter).Return(nil, stderrors.New("db down"))

		events, err := uc.ListEvents(context.Background(), listFilter, stockeventv1.Filter{})
		assert.Error(t, err)
		assert.Nil(t, events)
	})
}

func TestUsecase_LatestForEnterprise(t *testing.T) {
	event := stockeventv1.CreateAddedStockOrderEvent(bookOrder("o-1", stockv1.OrderSideBuy, "alice", 1), nil)

	t.Run("found", func(t *testing.T) {
		uc, m := setup(t, memory.NewOrderBook())
		m.cache.EXPECT().Latest(gomock.Any(), "ACME").Return(event, nil)

		got, err := uc.LatestForEnterprise(context.Background(), " ACME ")
		require.NoError(t, err)
		assert.Same(t, event, got)
	})

	t.Run("empty name", func(t *testing.T) {
		uc, _ := setup(t, memory.NewOrderBook())

		_, err := uc.LatestForEnterprise(context.Background(), "  ")
		assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError.String()))
	})
}
