package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	stockv1 "github.com/stockmarket/notifier/internal/domain/stock/v1"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/pkg/errors"
)

// parseFilter reads holder, enterprise and type. type is a comma separated
// list of event types.
func parseFilter(query url.Values) (stockeventv1.Filter, error) {
	var filter stockeventv1.Filter

	if holder := strings.TrimSpace(query.Get("holder")); holder != "" {
		filter.Holder = stockv1.NewStockholder(holder, "")
	}
	filter.Enterprise = stockv1.TrimEnterprise(query.Get("enterprise"))

	for _, raw := range query["type"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			eventType := stockeventv1.EventType(part)
			if !eventType.IsValid() {
				return filter, badRequest("unknown event type "+part, "type")
			}
			filter.EventTypes = append(filter.EventTypes, eventType)
		}
	}

	return filter, nil
}

// parseListFilter reads the event log query. Holder, enterprise and types are
// pushed down to the event log so paging applies to matching events.
func parseListFilter(query url.Values, filter stockeventv1.Filter) (stockeventv1.ListFilter, error) {
	listFilter := stockeventv1.ListFilter{
		EventTypes: filter.EventTypes,
		Enterprise: filter.Enterprise,
	}
	if filter.Holder != nil {
		listFilter.Holder = filter.Holder.ID
	}

	var err error
	if listFilter.Limit, err = parseNonNegative(query, "limit"); err != nil {
		return listFilter, err
	}
	if listFilter.Offset, err = parseNonNegative(query, "offset"); err != nil {
		return listFilter, err
	}
	if listFilter.From, err = parseTime(query, "from"); err != nil {
		return listFilter, err
	}
	if listFilter.To, err = parseTime(query, "to"); err != nil {
		return listFilter, err
	}

	return listFilter, nil
}

func parseNonNegative(query url.Values, field string) (int, error) {
	raw := query.Get(field)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, badRequest(field+" must be a non-negative integer", field)
	}
	return n, nil
}

func parseTime(query url.Values, field string) (*time.Time, error) {
	raw := query.Get(field)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, badRequest(field+" must be an RFC 3339 timestamp", field)
	}
	return &t, nil
}

func badRequest(message, field string) error {
	return errors.NewErrorDetails(message, errors.GeneralBadRequestError.String(), field)
}
