package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

// DefaultTimeout bounds a single run of all checks.
const DefaultTimeout = 2 * time.Second

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Report is the body of GET /health.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheck is the health check handler.
type HealthCheck struct {
	checks  map[string]CheckFunc
	timeout time.Duration
}

// New creates a health check running checks on every request.
func New(checks map[string]CheckFunc) HealthCheck {
	return HealthCheck{
		checks:  checks,
		timeout: DefaultTimeout,
	}
}

// Handler is used to control the flow of GET /health endpoint
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// Run executes every check. The report status is "ok" only when all of them pass.
func (hc HealthCheck) Run(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, hc.timeout)
	defer cancel()

	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	report := Report{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := hc.checks[name](ctx); err != nil {
			report.Status = "unavailable"
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = "ok"
	}
	return report
}

// ServeHTTP serve http request for health check
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := hc.Run(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if report.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(report)
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}
