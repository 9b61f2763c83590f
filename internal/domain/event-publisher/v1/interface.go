package eventpublisherv1

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of kafka.Writer used to publish stock events.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
