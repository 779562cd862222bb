package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"bomul-market/internal/marketerrors"
	"bomul-market/internal/metrics"
	"bomul-market/utils"
)

// RemoteApplier folds a snapshot received from another session into local state.
// It reports whether the snapshot was applied.
type RemoteApplier interface {
	ApplyRemote(e Event) bool
}

type subscription struct {
	id       uint64
	listener Listener
}

// Hub delivers events to local listeners and mirrors locally originated
// events onto a shared Channel so other sessions converge.
type Hub struct {
	mu        sync.RWMutex
	listeners []subscription
	nextID    uint64

	channel     Channel
	channelName string
	origin      string
	metrics     *metrics.MarketMetrics
	now         func() time.Time
}

// HubOption customizes a Hub
type HubOption func(*Hub)

// WithMetrics records published and received events
func WithMetrics(m *metrics.MarketMetrics) HubOption {
	return func(h *Hub) { h.metrics = m }
}

// WithOrigin fixes the session identifier stamped on outgoing events
func WithOrigin(origin string) HubOption {
	return func(h *Hub) { h.origin = origin }
}

// NewHub creates a hub bound to channelName on channel. A nil channel keeps
// the hub purely local.
func NewHub(channel Channel, channelName string, opts ...HubOption) *Hub {
	if channelName == "" {
		channelName = DefaultChannelName
	}
	h := &Hub{
		channel:     channel,
		channelName: channelName,
		origin:      utils.GenerateID(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Origin identifies this session on the shared channel
func (h *Hub) Origin() string {
	return h.origin
}

// Subscribe registers a listener. Each registration is independent and the
// returned handle removes only that registration.
func (h *Hub) Subscribe(listener Listener) (unsubscribe func()) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, subscription{id: id, listener: listener})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.listeners {
		if s.id == id {
			h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners
func (h *Hub) ListenerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// Publish invokes every local listener, then forwards the event to the
// shared channel. Forwarding failures are logged and never surface to the caller.
func (h *Hub) Publish(ctx context.Context, e Event) {
	if e.ID == "" {
		e.ID = utils.GenerateID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = h.now().UTC()
	}
	e.Origin = h.origin
	e.FromRemote = false

	h.notify(e)
	h.metrics.IncPublished(string(e.Type))

	if h.channel == nil {
		return
	}
	payload, err := json.Marshal(e)
	if err != nil {
		h.metrics.IncBroadcastFailure()
		utils.Error("events: failed to encode event", map[string]any{"event_id": e.ID, "type": e.Type, "error": err.Error()})
		return
	}
	if err := h.channel.Publish(ctx, h.channelName, payload); err != nil {
		h.metrics.IncBroadcastFailure()
		utils.Warn("events: failed to forward event to channel", map[string]any{
			"event_id": e.ID,
			"type":     e.Type,
			"channel":  h.channelName,
			"error":    err.Error(),
		})
	}
}

// Listen subscribes to the shared channel. Events from other sessions are
// handed to applier and then to local listeners; they are never re-forwarded.
func (h *Hub) Listen(ctx context.Context, applier RemoteApplier) error {
	if h.channel == nil {
		return nil
	}
	if err := h.channel.OnMessage(ctx, h.channelName, func(payload []byte) {
		h.HandleMessage(payload, applier)
	}); err != nil {
		return fmt.Errorf("events: subscribe to %s: %w", h.channelName, err)
	}
	utils.Info("events: listening on broadcast channel", map[string]any{"channel": h.channelName, "origin": h.origin})
	return nil
}

// HandleMessage decodes one channel message and applies it. Messages this
// session published itself are dropped.
func (h *Hub) HandleMessage(payload []byte, applier RemoteApplier) {
	e, err := DecodeEvent(payload)
	if err != nil {
		utils.Warn("events: dropping malformed message", map[string]any{"channel": h.channelName, "error": err.Error()})
		return
	}
	if e.Origin == h.origin {
		return
	}
	e.FromRemote = true
	h.metrics.IncReceived(string(e.Type))

	if applier != nil && !applier.ApplyRemote(e) {
		utils.Debug("events: remote snapshot not applied", map[string]any{"event_id": e.ID, "type": e.Type, "origin": e.Origin})
		return
	}
	h.notify(e)
}

func (h *Hub) notify(e Event) {
	h.mu.RLock()
	listeners := append([]subscription(nil), h.listeners...)
	h.mu.RUnlock()

	for _, s := range listeners {
		s.listener(e)
	}
}

// DecodeEvent parses a channel payload
func DecodeEvent(payload []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return Event{}, fmt.Errorf("%w: %v", marketerrors.ErrBroadcastDecoding, err)
	}
	switch e.Type {
	case BidUpdate, AuctionClosed, ProductListed:
		if e.Product == nil {
			return Event{}, fmt.Errorf("%w: %s without product", marketerrors.ErrBroadcastDecoding, e.Type)
		}
	case UserUpdate, ReportUpdate:
	default:
		return Event{}, fmt.Errorf("%w: unknown type %q", marketerrors.ErrBroadcastDecoding, e.Type)
	}
	return e, nil
}
