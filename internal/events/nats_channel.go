package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
)

// NATSChannel carries broadcast messages over core NATS subjects
type NATSChannel struct {
	conn *nats.Conn

	mu     sync.Mutex
	subs   []*nats.Subscription
	closed bool
}

// NewNATSChannel connects to the NATS server at url
func NewNATSChannel(url, clientName string) (*NATSChannel, error) {
	conn, err := nats.Connect(url, nats.Name(clientName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSChannel{conn: conn}, nil
}

// Publish sends payload on subject channel
func (c *NATSChannel) Publish(_ context.Context, channel string, payload []byte) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrChannelClosed
	}
	if err := c.conn.Publish(channel, payload); err != nil {
		return fmt.Errorf("nats publish %s: %w", channel, err)
	}
	return nil
}

// OnMessage subscribes handler to subject channel. The subscription is
// flushed to the server before returning so no message published afterwards is missed.
func (c *NATSChannel) OnMessage(ctx context.Context, channel string, handler func([]byte)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}

	sub, err := c.conn.Subscribe(channel, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("nats subscribe %s: %w", channel, err)
	}
	if err := c.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("nats flush %s: %w", channel, err)
	}
	c.subs = append(c.subs, sub)

	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			_ = sub.Unsubscribe()
		}()
	}
	return nil
}

// Close unsubscribes and drains the connection
func (c *NATSChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, s := range c.subs {
		_ = s.Unsubscribe()
	}
	c.subs = nil
	c.conn.Close()
	return nil
}
