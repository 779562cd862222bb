package events

import (
	"context"
	"errors"
	"sync"
)

// ErrChannelClosed is returned by a closed Channel
var ErrChannelClosed = errors.New("broadcast channel closed")

//go:generate mockgen -destination=mock_channel.go -package=events bomul-market/internal/events Channel

// Channel is a named broadcast medium. Every process subscribed to a
// channel receives every message published on it, including its own.
type Channel interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// OnMessage registers handler and returns once the subscription is live.
	// The subscription ends when ctx is done or the channel is closed.
	OnMessage(ctx context.Context, channel string, handler func(payload []byte)) error
	Close() error
}

type memoryHandler struct {
	id      uint64
	handler func([]byte)
}

// MemoryBroker is an in-process Channel. Hubs sharing one broker behave
// like sessions sharing a browser broadcast channel. Delivery is synchronous.
type MemoryBroker struct {
	mu       sync.RWMutex
	handlers map[string][]memoryHandler
	nextID   uint64
	closed   bool
}

// NewMemoryBroker creates an empty in-process broker
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{handlers: make(map[string][]memoryHandler)}
}

// Publish delivers payload to every handler registered on channel
func (b *MemoryBroker) Publish(_ context.Context, channel string, payload []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrChannelClosed
	}
	handlers := append([]memoryHandler(nil), b.handlers[channel]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h.handler(append([]byte(nil), payload...))
	}
	return nil
}

// OnMessage registers handler on channel
func (b *MemoryBroker) OnMessage(ctx context.Context, channel string, handler func([]byte)) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrChannelClosed
	}
	b.nextID++
	id := b.nextID
	b.handlers[channel] = append(b.handlers[channel], memoryHandler{id: id, handler: handler})
	b.mu.Unlock()

	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			b.remove(channel, id)
		}()
	}
	return nil
}

func (b *MemoryBroker) remove(channel string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[channel]
	for i, h := range handlers {
		if h.id == id {
			b.handlers[channel] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

// Close drops every subscription
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[string][]memoryHandler)
	return nil
}
