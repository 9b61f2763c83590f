package util

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header used to propagate request ids.
const RequestIDHeader = "X-Request-Id"

// generate returns a uuid-v4 string to use as request id
func generate() string {
	return uuid.NewString()
}

// ContextFromRequest returns the request context enriched with request id and client ip.
func ContextFromRequest(r *http.Request) context.Context {
	ctx := WithRequestID(r.Context(), r.Header.Get(RequestIDHeader))

	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}

	return WithClientIP(ctx, ip)
}
