package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stockmarket/notifier/internal/rest"
	"github.com/stockmarket/notifier/pkg/grpclib/health"
	"github.com/stockmarket/notifier/pkg/httplib/healthcheck"
	"google.golang.org/grpc"
)

// Server holds the HTTP API and the gRPC health endpoint.
type Server struct {
	Handler *rest.Handler
	HTTP    *http.Server
	GRPC    *grpc.Server
	Health  *health.Server
}

// registerServer registers the servers.
func (b *Bootstrap) registerServer() {
	b.Server.Handler = rest.NewHandler(
		b.Usecase.StockEventUsecase,
		b.Usecase.Notifier,
		b.Logger,
		b.Config.Notifier.Buffer,
	)

	checks := healthcheck.New(map[string]healthcheck.CheckFunc{
		"postgres": b.Postgres.Ping,
		"redis":    b.Redis.Ping,
	})

	b.Server.HTTP = &http.Server{
		Addr:              fmt.Sprintf(":%d", b.Config.App.Port),
		Handler:           rest.NewRouter(b.Server.Handler, checks),
		ReadHeaderTimeout: 5 * time.Second,
	}

	b.Server.GRPC = grpc.NewServer()
	b.Server.Health = health.NewServer()
	b.Server.Health.InitService(ServiceName)
	b.Server.Health.Register(b.Server.GRPC)
}
