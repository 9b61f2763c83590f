package notifier

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	stockeventMock "github.com/stockmarket/notifier/internal/domain/stockevent/v1/mock"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
	loggerMock "github.com/stockmarket/notifier/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addedBy(holder string) *stockeventv1.StockEvent {
	return stockeventv1.CreateAddedStockOrderEvent(&stockv1.StockOrder{
		ID:     "o-" + holder,
		Placer: stockv1.NewStockholder(holder, ""),
		Stocks: &stockv1.Stocks{Enterprise: "ACME", Quantity: 1},
	}, nil)
}

func TestNotifier_Notify(t *testing.T) {
	event := addedBy("alice")

	testCases := []struct {
		name     string
		mockFn   func(repo *stockeventMock.MockRepository, kafka, redis *stockeventMock.MockPublisher, log *loggerMock.MockInterface)
		assertFn func(t *testing.T, sub *Subscription, err error)
	}{
		{
			name: "success",
			mockFn: func(repo *stockeventMock.MockRepository, kafka, redis *stockeventMock.MockPublisher, log *loggerMock.MockInterface) {
				gomock.InOrder(
					repo.EXPECT().Store(gomock.Any(), event).Return(nil),
					kafka.EXPECT().PublishStockEvent(gomock.Any(), event).Return(nil),
					redis.EXPECT().PublishStockEvent(gomock.Any(), event).Return(nil),
				)
			},
			assertFn: func(t *testing.T, sub *Subscription, err error) {
				require.NoError(t, err)
				require.Len(t, sub.C(), 1)
				assert.Same(t, event, <-sub.C())
			},
		},
		{
			name: "store fails",
			mockFn: func(repo *stockeventMock.MockRepository, kafka, redis *stockeventMock.MockPublisher, log *loggerMock.MockInterface) {
				repo.EXPECT().Store(gomock.Any(), event).Return(stderrors.New("db down"))
				log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, sub *Subscription, err error) {
				assert.EqualError(t, err, "db down")
				assert.Len(t, sub.C(), 0)
			},
		},
		{
			name: "sink fails",
			mockFn: func(repo *stockeventMock.MockRepository, kafka, redis *stockeventMock.MockPublisher, log *loggerMock.MockInterface) {
				repo.EXPECT().Store(gomock.Any(), event).Return(nil)
				kafka.EXPECT().PublishStockEvent(gomock.Any(), event).Return(stderrors.New("broker down"))
				redis.EXPECT().PublishStockEvent(gomock.Any(), event).Return(stderrors.New("redis down"))
				log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
			},
			assertFn: func(t *testing.T, sub *Subscription, err error) {
				assert.EqualError(t, err, "stock event stored but not delivered: broker down")
				assert.True(t, errors.ErrorCodeEquals(err, errors.StockEventPublishError.String()))
				assert.Len(t, sub.C(), 1)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := stockeventMock.NewMockRepository(ctrl)
			kafka := stockeventMock.NewMockPublisher(ctrl)
			redis := stockeventMock.NewMockPublisher(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			testCase.mockFn(repo, kafka, redis, log)

			n := NewNotifier(repo, log, kafka, redis)
			sub := n.Subscribe(stockeventv1.Filter{}, 4)

			err := n.Notify(context.Background(), event)
			testCase.assertFn(t, sub, err)
		})
	}
}

func TestNotifier_NotifyNilEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := NewNotifier(stockeventMock.NewMockRepository(ctrl), loggerMock.NewMockInterface(ctrl))
	assert.Error(t, n.Notify(context.Background(), nil))
}

func TestNotifier_FanOutFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := stockeventMock.NewMockRepository(ctrl)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	n := NewNotifier(repo, logger.NewNopLogger())
	aliceSub := n.Subscribe(stockeventv1.Filter{Holder: stockv1.NewStockholder("alice", "")}, 4)
	acmeSub := n.Subscribe(stockeventv1.Filter{Enterprise: "acme"}, 4)
	removedSub := n.Subscribe(stockeventv1.Filter{EventTypes: []stockeventv1.EventType{stockeventv1.EventTypeRemoved}}, 4)

	require.NoError(t, n.Notify(context.Background(), addedBy("alice")))
	require.NoError(t, n.Notify(context.Background(), addedBy("bob")))

	assert.Len(t, aliceSub.C(), 1)
	assert.Len(t, acmeSub.C(), 2)
	assert.Len(t, removedSub.C(), 0)
}

func TestNotifier_DropsWhenBufferFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := stockeventMock.NewMockRepository(ctrl)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	n := NewNotifier(repo, log)
	slow := n.Subscribe(stockeventv1.Filter{}, 1)

	for i := 0; i < 3; i++ {
		require.NoError(t, n.Notify(context.Background(), addedBy("alice")))
	}

	assert.Equal(t, int64(2), slow.Dropped())
	assert.Len(t, slow.C(), 1)
}

func TestNotifier_UnsubscribeAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := NewNotifier(stockeventMock.NewMockRepository(ctrl), logger.NewNopLogger())

	a := n.Subscribe(stockeventv1.Filter{}, 0)
	b := n.Subscribe(stockeventv1.Filter{}, 0)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, DefaultBuffer, cap(a.C()))
	assert.Equal(t, 2, n.Subscribers())

	n.Unsubscribe(a.ID())
	_, open := <-a.C()
	assert.False(t, open)
	assert.Equal(t, 1, n.Subscribers())

	n.Unsubscribe(a.ID())
	n.Unsubscribe("unknown")

	n.Close()
	_, open = <-b.C()
	assert.False(t, open)
	assert.Equal(t, 0, n.Subscribers())

	late := n.Subscribe(stockeventv1.Filter{}, 1)
	_, open = <-late.C()
	assert.False(t, open)
	assert.Equal(t, 0, n.Subscribers())
}

func TestNotifier_ConcurrentNotifyAndSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := stockeventMock.NewMockRepository(ctrl)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	n := NewNotifier(repo, logger.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := n.Subscribe(stockeventv1.Filter{}, 1)
			n.Unsubscribe(sub.ID())
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, n.Notify(context.Background(), addedBy("alice")))
		}()
	}
	wg.Wait()
	n.Close()
}
