package stockevent

import (
	"encoding/json"
	"time"

	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
)

// Record is a row of the stock_events table.
type Record struct {
	ID           string
	EventType    string
	Payload      []byte
	Participants []string
	Enterprises  []string
	OccurredAt   time.Time
}

// NewRecord converts event to its row. Participants are holder IDs and
// enterprises are normalized with stockv1.NormalizeEnterprise.
func NewRecord(event *stockeventv1.StockEvent) (*Record, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	participants := make([]string, 0, 2)
	for _, holder := range event.Participants() {
		participants = append(participants, holder.ID)
	}

	enterprises := make([]string, 0, 2)
	for _, name := range event.Enterprises() {
		enterprises = append(enterprises, stockv1.NormalizeEnterprise(name))
	}

	return &Record{
		ID:           event.ID(),
		EventType:    event.EventType().String(),
		Payload:      payload,
		Participants: participants,
		Enterprises:  enterprises,
		OccurredAt:   event.OccurredAt(),
	}, nil
}


func decodePayload(payload []byte) (*stockeventv1.StockEvent, error) {
	event := &stockeventv1.StockEvent{}
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, err
	}
	return event, nil
}
