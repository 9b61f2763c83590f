package util

import (
	"context"
)

type key string

const (
	requestIDKey  = key("x-request-id")
	clientIPKey   = key("x-forwarded-for")
	subscriberKey = key("subscriber-id")
)

// WithRequestID returns a context with request id.
// A new id is generated when the provided one is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = generate()
	}

	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns request id from context
// will return empty string if not present
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP returns a context with a client ip
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP returns client ip from context
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// WithSubscriberID returns a context carrying the id of a stream subscription.
func WithSubscriberID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, subscriberKey, id)
}

// GetSubscriberID returns the stream subscription id from context.
func GetSubscriberID(ctx context.Context) string {
	id, _ := ctx.Value(subscriberKey).(string)
	return id
}
