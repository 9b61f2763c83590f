package stockeventv1

import stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"

// Filter selects events for a subscriber. Unset criteria match everything.
type Filter struct {
	Holder     *stockv1.Stockholder
	Enterprise string
	EventTypes []EventType
}

// Match reports whether event satisfies every criterion set on f.
func (f Filter) Match(event *StockEvent) bool {
	if event == nil {
		return false
	}

	if f.Holder != nil && !event.IsParticipant(f.Holder) {
		return false
	}

	if f.Enterprise != "" && !event.IsFromEnterprise(f.Enterprise) {
		return false
	}

	if len(f.EventTypes) > 0 {
		for _, t := range f.EventTypes {
			if t == event.EventType() {
				return true
			}
		}
		return false
	}

	return true
}
