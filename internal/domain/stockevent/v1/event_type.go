package stockeventv1

// EventType identifies which kind of change a StockEvent describes.
type EventType string

const (
	// EventTypeAdded is raised when a stock order is created.
	EventTypeAdded EventType = "ADDED"
	// EventTypeRemoved is raised when a stock order is removed.
	EventTypeRemoved EventType = "REMOVED"
	// EventTypeUpdated is raised when a stock order changes.
	EventTypeUpdated EventType = "UPDATED"
	// EventTypeTraded is raised when a buy and a sell order are matched.
	EventTypeTraded EventType = "TRADED"
)

// EventTypes lists every supported event type.
var EventTypes = []EventType{
	EventTypeAdded,
	EventTypeRemoved,
	EventTypeUpdated,
	EventTypeTraded,
}

// IsValid reports whether t is one of the supported event types.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeAdded, EventTypeRemoved, EventTypeUpdated, EventTypeTraded:
		return true
	}
	return false
}

func (t EventType) String() string {
	return string(t)
}
