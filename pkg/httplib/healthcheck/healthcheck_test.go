package healthcheck

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_ServeHTTP(t *testing.T) {
	testCases := []struct {
		name       string
		checks     map[string]CheckFunc
		wantStatus int
		wantReport Report
	}{
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
			wantReport: Report{Status: "ok"},
		},
		{
			name: "all healthy",
			checks: map[string]CheckFunc{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return nil },
			},
			wantStatus: http.StatusOK,
			wantReport: Report{Status: "ok", Checks: map[string]string{"postgres": "ok", "redis": "ok"}},
		},
		{
			name: "one failing",
			checks: map[string]CheckFunc{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return stderrors.New("connection refused") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantReport: Report{Status: "unavailable", Checks: map[string]string{"postgres": "ok", "redis": "connection refused"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			New(tc.checks).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)

			var got Report
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tc.wantReport, got)
		})
	}
}

func TestHealthCheck_Handler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := New(nil).Handler(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
