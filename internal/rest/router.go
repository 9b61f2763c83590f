package rest

import (
	"net/http"

	"github.com/stockmarket/notifier/pkg/httplib/healthcheck"
	"github.com/stockmarket/notifier/pkg/util"
)

// NewRouter registers the API routes behind the health check and request id middleware.
func NewRouter(handler *Handler, health healthcheck.HealthCheck) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", handler.ListEvents)
	mux.HandleFunc("GET /events/stream", handler.Stream)
	mux.HandleFunc("GET /enterprises/{name}/latest", handler.LatestForEnterprise)

	return health.Handler(withRequestID(mux))
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.ContextFromRequest(r)
		w.Header().Set(util.RequestIDHeader, util.GetRequestID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
