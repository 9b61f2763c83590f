package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	stockeventv1 "github.com/stockmarket/notifier/internal/domain/stockevent/v1"
	"github.com/stockmarket/notifier/internal/usecase/notifier"
	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stockmarket/notifier/pkg/util"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Subscriber hands out live event subscriptions.
type Subscriber interface {
	Subscribe(filter stockeventv1.Filter, buffer int) *notifier.Subscription
	Unsubscribe(id string)
}

type eventsResponse struct {
	Events []*stockeventv1.StockEvent `json:"events"`
}

// Handler serves the stock event HTTP API.
type Handler struct {
	usecase    stockeventv1.Usecase
	subscriber Subscriber
	logger     logger.Interface
	buffer     int
	upgrader   websocket.Upgrader
}

// NewHandler creates the HTTP API. buffer is the size of each stream subscription.
func NewHandler(usecase stockeventv1.Usecase, subscriber Subscriber, logger logger.Interface, buffer int) *Handler {
	return &Handler{
		usecase:    usecase,
		subscriber: subscriber,
		logger:     logger,
		buffer:     buffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ListEvents serves GET /events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter, err := parseFilter(query)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	listFilter, err := parseListFilter(query, filter)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	events, err := h.usecase.ListEvents(ctx, listFilter, filter)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if events == nil {
		events = []*stockeventv1.StockEvent{}
	}

	writeJSON(w, http.StatusOK, eventsResponse{Events: events})
}

// LatestForEnterprise serves GET /enterprises/{name}/latest.
func (h *Handler) LatestForEnterprise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	event, err := h.usecase.LatestForEnterprise(ctx, r.PathValue("name"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Stream serves GET /events/stream. Every matching event is sent as a JSON
// text message until the client goes away.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed",
			logger.Field{Key: "error", Value: err.Error()},
		)
		return
	}
	defer conn.Close()

	sub := h.subscriber.Subscribe(filter, h.buffer)
	defer h.subscriber.Unsubscribe(sub.ID())

	ctx := util.WithSubscriberID(r.Context(), sub.ID())
	h.logger.InfoContext(ctx, "stream opened",
		logger.Field{Key: "subscriber_id", Value: sub.ID()},
	)

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	h.writePump(ctx, conn, sub, closed)

	h.logger.InfoContext(ctx, "stream closed",
		logger.Field{Key: "subscriber_id", Value: sub.ID()},
		logger.Field{Key: "dropped", Value: sub.Dropped()},
	)
}

// readPump discards client messages and closes done when the connection fails.
func (h *Handler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, sub *notifier.Subscription, closed <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case event, ok := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "notifier closed"))
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.WarnContext(ctx, "stream write failed",
					logger.Field{Key: "error", Value: err.Error()},
				)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, resp := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "http_request"})
	}
	writeJSON(w, status, resp)
}
