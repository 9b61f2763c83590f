package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stockmarket/notifier/pkg/postgresql"
	"github.com/stockmarket/notifier/pkg/redis"
	"google.golang.org/grpc"
)

// ServiceName is the name reported by the gRPC health service.
const ServiceName = "stockmarket.notifier"

// Bootstrap is the bootstrap for the stock event notifier.
type Bootstrap struct {
	Config     *config.Config
	Logger     logger.Interface
	Repository Repository
	Usecase    Usecase
	Consumer   Consumer
	Server     Server

	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client

	cancel context.CancelFunc
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config   *config.Config
	Logger   logger.Interface
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.Logger = config.Logger
	b.Postgres = config.Postgres
	b.Redis = config.Redis

	b.registerRepository()
	b.registerUsecase()
	b.registerConsumer()
	b.registerServer()

	return *b
}

// Start runs the consumers and servers in the background.
func (b *Bootstrap) Start(ctx context.Context) error {
	ctx, b.cancel = context.WithCancel(ctx)

	httpListener, err := net.Listen("tcp", b.Server.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", b.Config.App.GRPCPort))
	if err != nil {
		_ = httpListener.Close()
		return fmt.Errorf("listen grpc: %w", err)
	}

	b.Consumer.OrderConsumer.Start(ctx)
	b.Consumer.MatchConsumer.Start(ctx)

	go b.Server.Health.Monitor(ctx, ServiceName, 10*time.Second, b.checkDependencies)

	go func() {
		if err := b.Server.HTTP.Serve(httpListener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			b.Logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "serve_http"})
		}
	}()
	go func() {
		if err := b.Server.GRPC.Serve(grpcListener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			b.Logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "serve_grpc"})
		}
	}()

	b.Logger.InfoContext(ctx, "stock notifier started",
		logger.Field{Key: "app", Value: b.Config.App.Name},
		logger.Field{Key: "environment", Value: b.Config.App.Environment},
		logger.Field{Key: "http_addr", Value: httpListener.Addr().String()},
		logger.Field{Key: "grpc_addr", Value: grpcListener.Addr().String()},
	)
	return nil
}

// Shutdown stops accepting work, then releases every resource. All steps run
// and the first failure is returned.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.cancel != nil {
		b.cancel()
	}

	var errs []error
	b.Server.Health.Shutdown()
	errs = append(errs, b.Server.HTTP.Shutdown(ctx))
	b.Server.GRPC.GracefulStop()

	errs = append(errs,
		b.Consumer.OrderConsumer.Stop(ctx),
		b.Consumer.MatchConsumer.Stop(ctx),
	)

	b.Usecase.Notifier.Close()
	if b.Usecase.Publisher != nil {
		errs = append(errs, b.Usecase.Publisher.Close())
	}

	errs = append(errs, b.Redis.Disconnect(ctx))
	b.Postgres.Close()

	for _, err := range errs {
		if err != nil {
			b.Logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "shutdown"})
			return err
		}
	}
	return nil
}

// checkDependencies reports whether the event log and Redis are reachable.
// A lost Redis connection is re-established before the check fails.
func (b *Bootstrap) checkDependencies(ctx context.Context) error {
	if err := b.Postgres.Ping(ctx); err != nil {
		return err
	}

	err := b.Redis.Ping(ctx)
	if err == nil {
		return nil
	}

	b.Logger.WarnContext(ctx, "redis unreachable, reconnecting",
		logger.Field{Key: "action", Value: "check_redis"},
		logger.Field{Key: "error", Value: err.Error()},
	)
	if b.Redis.Reconnect(ctx) {
		return nil
	}
	return err
}
