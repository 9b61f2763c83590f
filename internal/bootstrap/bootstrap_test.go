package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
	mockPg "github.com/stockmarket/notifier/pkg/postgresql/mock"
	redisMock "github.com/stockmarket/notifier/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.App.Port = 0
	cfg.App.GRPCPort = 0
	return cfg
}

func TestBootstrap_Init(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testCases := []struct {
		name          string
		kafkaEnabled  bool
		wantPublisher bool
	}{
		{name: "with event topic", kafkaEnabled: true, wantPublisher: true},
		{name: "without event topic", kafkaEnabled: false, wantPublisher: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.EventKafka.Enabled = tc.kafkaEnabled

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			rdb := redisMock.NewMockClient(ctrl)
			pg.EXPECT().Close()
			rdb.EXPECT().Disconnect(gomock.Any()).Return(nil)

			b := &Bootstrap{}
			b.Init(BootstrapConfig{
				Config:   cfg,
				Logger:   logger.NewNopLogger(),
				Postgres: pg,
				Redis:    rdb,
			})

			assert.NotNil(t, b.Repository.StockEventRepository)
			assert.NotNil(t, b.Usecase.StockEventUsecase)
			assert.NotNil(t, b.Usecase.Notifier)
			assert.NotNil(t, b.Usecase.Broadcaster)
			assert.Equal(t, tc.wantPublisher, b.Usecase.Publisher != nil)
			assert.NotNil(t, b.Consumer.OrderConsumer)
			assert.NotNil(t, b.Consumer.MatchConsumer)

			rec := httptest.NewRecorder()
			pg.EXPECT().Ping(gomock.Any()).Return(nil)
			rdb.EXPECT().Ping(gomock.Any()).Return(nil)
			b.Server.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, rec.Code)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			assert.NoError(t, b.Shutdown(ctx))
		})
	}
}

func TestBootstrap_StartAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(t)
	cfg.EventKafka.Enabled = false

	pg := mockPg.NewMockPostgreSQLClient(ctrl)
	rdb := redisMock.NewMockClient(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
	rdb.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
	pg.EXPECT().Close()
	rdb.EXPECT().Disconnect(gomock.Any()).Return(nil)

	b := &Bootstrap{}
	b.Init(BootstrapConfig{
		Config:   cfg,
		Logger:   logger.NewNopLogger(),
		Postgres: pg,
		Redis:    rdb,
	})

	require.NoError(t, b.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, b.Shutdown(ctx))
}

func TestBootstrap_checkDependencies(t *testing.T) {
	pingErr := errors.NewErrorDetails("Failed to ping Redis: EOF", errors.RedisPingError.String(), "ping")

	testCases := []struct {
		name    string
		mockFn  func(pg *mockPg.MockPostgreSQLClient, rdb *redisMock.MockClient)
		wantErr error
	}{
		{
			name: "healthy",
			mockFn: func(pg *mockPg.MockPostgreSQLClient, rdb *redisMock.MockClient) {
				pg.EXPECT().Ping(gomock.Any()).Return(nil)
				rdb.EXPECT().Ping(gomock.Any()).Return(nil)
			},
		},
		{
			name: "postgres down",
			mockFn: func(pg *mockPg.MockPostgreSQLClient, rdb *redisMock.MockClient) {
				pg.EXPECT().Ping(gomock.Any()).Return(assert.AnError)
			},
			wantErr: assert.AnError,
		},
		{
			name: "redis reconnected",
			mockFn: func(pg *mockPg.MockPostgreSQLClient, rdb *redisMock.MockClient) {
				pg.EXPECT().Ping(gomock.Any()).Return(nil)
				gomock.InOrder(
					rdb.EXPECT().Ping(gomock.Any()).Return(pingErr),
					rdb.EXPECT().Reconnect(gomock.Any()).Return(true),
				)
			},
		},
		{
			name: "redis stays down",
			mockFn: func(pg *mockPg.MockPostgreSQLClient, rdb *redisMock.MockClient) {
				pg.EXPECT().Ping(gomock.Any()).Return(nil)
				rdb.EXPECT().Ping(gomock.Any()).Return(pingErr)
				rdb.EXPECT().Reconnect(gomock.Any()).Return(false)
			},
			wantErr: pingErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			rdb := redisMock.NewMockClient(ctrl)
			tc.mockFn(pg, rdb)

			b := &Bootstrap{Logger: logger.NewNopLogger(), Postgres: pg, Redis: rdb}
			err := b.checkDependencies(context.Background())
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Same(t, tc.wantErr, err)
		})
	}
}
