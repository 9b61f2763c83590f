package consumer

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	messagereaderv1 "github.com/stockmarket/notifier/internal/domain/message-reader/v1"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
)

// decodeError marks a message that can never be processed.
type decodeError struct {
	err error
}

func (e decodeError) Error() string {
	return "decode message: " + e.err.Error()
}

func (e decodeError) Unwrap() error {
	return e.err
}

const (
	fetchRetryDelay = time.Second
	handleAttempts  = 5
)

// terminalCodes mark handler errors another attempt cannot fix. A publish
// error is raised after the event was stored, so a retry would store it twice.
var terminalCodes = []errors.ErrorCode{
	errors.GeneralBadRequestError,
	errors.OrderEventUnknownType,
	errors.MatchEventInvalid,
	errors.StockEventMissingStock,
	errors.StockEventUnknownType,
	errors.StockEventPublishError,
}

type processFunc func(ctx context.Context, msg kafka.Message) error

// loop reads messages from reader until ctx is cancelled or the reader is closed.
type loop struct {
	name    string
	reader  messagereaderv1.MessageReader
	logger  logger.Interface
	process processFunc

	retryDelay  time.Duration
	maxAttempts int
}

func newReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
}

func (l *loop) run(ctx context.Context) {
	l.logger.InfoContext(ctx, "starting "+l.name,
		logger.Field{Key: "action", Value: l.name + "_start"},
	)

	for {
		msg, err := l.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, io.EOF) {
				l.logger.InfoContext(ctx, l.name+" stopped")
				return
			}
			l.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "fetch_" + l.name + "_message"})

			select {
			case <-ctx.Done():
				return
			case <-time.After(l.retryDelay):
			}
			continue
		}

		l.handle(ctx, msg)
	}
}

// handle processes msg and commits it. Transient failures are retried with a
// doubling backoff before the next message is fetched. Messages that can never
// succeed are committed and skipped. A message still failing after maxAttempts
// is left uncommitted, but the reader moves past it and the next commit on the
// partition covers it.
func (l *loop) handle(ctx context.Context, msg kafka.Message) {
	err := l.process(ctx, msg)
	delay := l.retryDelay
	for attempt := 1; err != nil && retryable(err) && attempt < l.maxAttempts; attempt++ {
		l.logger.WarnContext(ctx, "retrying "+l.name+" message",
			logger.Field{Key: "attempt", Value: attempt},
			logger.Field{Key: "offset", Value: msg.Offset},
			logger.Field{Key: "error", Value: err.Error()},
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2

		err = l.process(ctx, msg)
	}

	var decodeErr decodeError
	switch {
	case err == nil:
	case stderrors.As(err, &decodeErr):
		l.logger.WarnContext(ctx, "skipping undecodable message",
			logger.Field{Key: "consumer", Value: l.name},
			logger.Field{Key: "offset", Value: msg.Offset},
			logger.Field{Key: "error", Value: err.Error()},
		)
	case !retryable(err):
		l.logger.WarnContext(ctx, "skipping rejected message",
			logger.Field{Key: "consumer", Value: l.name},
			logger.Field{Key: "offset", Value: msg.Offset},
			logger.Field{Key: "error", Value: err.Error()},
		)
	default:
		l.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "process_" + l.name + "_message"},
			logger.Field{Key: "offset", Value: msg.Offset},
		)
		return
	}

	if err := l.reader.CommitMessages(ctx, msg); err != nil {
		l.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "commit_" + l.name + "_message"},
			logger.Field{Key: "offset", Value: msg.Offset},
		)
	}
}

// retryable reports whether another attempt at err may succeed.
func retryable(err error) bool {
	var decodeErr decodeError
	if stderrors.As(err, &decodeErr) {
		return false
	}

	for _, code := range terminalCodes {
		if errors.ErrorCodeEquals(err, code.String()) {
			return false
		}
	}
	return true
}
