package messagereaderv1

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageReader defines the interface for reading messages from a topic.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type MessageReader interface {
	// FetchMessage reads the next message without committing it
	FetchMessage(ctx context.Context) (kafka.Message, error)
	// CommitMessages commits the messages after processing
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	// Close closes the reader
	Close() error
}
