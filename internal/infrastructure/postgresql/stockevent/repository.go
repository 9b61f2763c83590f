package stockevent

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stockmarket/notifier/pkg/postgresql"
)

const (
	tableName = "stock_events"

	// DefaultListLimit applies when a list filter has no limit.
	DefaultListLimit = 100
	// MaxListLimit caps the page size of a list.
	MaxListLimit = 1000
)

// Ensure repository implements the event log.
var _ stockeventv1.Repository = (*repository)(nil)

type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates the PostgreSQL event log.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Store appends event to the log. Storing an event twice is a no-op.
func (r *repository) Store(ctx context.Context, event *stockeventv1.StockEvent) error {
	record, err := NewRecord(event)
	if err != nil {
		return errors.TracerFromError(err)
	}

	query, args := postgresql.InsertInto(tableName).
		Set("id", record.ID).
		Set("event_type", record.EventType).
		Set("payload", record.Payload).
		Set("participants", record.Participants).
		Set("enterprises", record.Enterprises).
		Set("occurred_at", record.OccurredAt).
		OnConflictDoNothing("id").
		Build()

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, errors.GeneralRepositoryError, "store stock event")
	}

	r.logger.DebugContext(ctx, "Inserted stock event",
		logger.Field{Key: "event_id", Value: record.ID},
		logger.Field{Key: "commandTag", Value: cmd.String()},
	)

	return nil
}

// GetByID returns the event with id or a stock_event_not_found error.
func (r *repository) GetByID(ctx context.Context, id string) (*stockeventv1.StockEvent, error) {
	query, args := postgresql.Select("payload").
		From(tableName).
		Where("id = ?", id).
		Build()

	var payload []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewErrorDetails("stock event "+id+" not found", errors.StockEventNotFound.String(), "id")
		}
		return nil, errors.TracerFromError(err)
	}

	event, err := decodePayload(payload)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return event, nil
}

// List returns the events matching filter ordered by occurrence.
func (r *repository) List(ctx context.Context, filter stockeventv1.ListFilter) ([]*stockeventv1.StockEvent, error) {
	query, args := listQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	events := make([]*stockeventv1.StockEvent, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.TracerFromError(err)
		}

		event, err := decodePayload(payload)
		if err != nil {
			r.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "decode_stock_event"})
			continue
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return events, nil
}

func listQuery(filter stockeventv1.ListFilter) (string, []any) {
	b := postgresql.Select("payload").From(tableName)

	if len(filter.EventTypes) > 0 {
		types := make([]string, len(filter.EventTypes))
		for i, t := range filter.EventTypes {
			types[i] = t.String()
		}
		b.Where("event_type = ANY(?)", types)
	}
	if filter.Holder != "" {
		b.Where("? = ANY(participants)", filter.Holder)
	}
	if enterprise := stockv1.NormalizeEnterprise(filter.Enterprise); enterprise != "" {
		b.Where("? = ANY(enterprises)", enterprise)
	}
	if filter.From != nil {
		b.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		b.Where("occurred_at < ?", *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	b.OrderBy("occurred_at", false).OrderBy("id", false).Limit(min(limit, MaxListLimit))

	if filter.Offset > 0 {
		b.Offset(filter.Offset)
	}

	return b.Build()
}
