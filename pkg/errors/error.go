package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// StockEventMissingStock is raised when an order carried by an event has no stock reference.
	StockEventMissingStock ErrorCode = "stock_event_missing_stock"
	// StockEventUnknownType is raised when an event type is not one of ADDED, REMOVED, UPDATED or TRADED.
	StockEventUnknownType ErrorCode = "stock_event_unknown_type"
	// StockEventNotFound is raised when an event does not exist in the event log.
	StockEventNotFound ErrorCode = "stock_event_not_found"
	// StockEventPublishError is raised when an event could not be handed to a sink.
	StockEventPublishError ErrorCode = "stock_event_publish_error"

	// OrderEventUnknownType is raised when an upstream order event has an unsupported type.
	OrderEventUnknownType ErrorCode = "order_event_unknown_type"
	// MatchEventInvalid is raised when an upstream match event cannot be turned into a trade.
	MatchEventInvalid ErrorCode = "match_event_invalid"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string {
	return string(c)
}
