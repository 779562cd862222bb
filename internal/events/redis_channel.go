package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"bomul-market/utils"
)

// RedisChannel carries broadcast messages over Redis Pub/Sub so that
// several market processes share one event stream.
type RedisChannel struct {
	client *redis.Client

	mu      sync.Mutex
	subs    []*redis.PubSub
	closed  bool
	wg      sync.WaitGroup
	ownsCli bool
}

// NewRedisChannel connects to Redis and verifies the connection
func NewRedisChannel(ctx context.Context, addr, password string, db int) (*RedisChannel, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisChannel{client: rdb, ownsCli: true}, nil
}

// NewRedisChannelFromClient reuses an existing client. Close leaves the client open.
func NewRedisChannelFromClient(client *redis.Client) *RedisChannel {
	return &RedisChannel{client: client}
}

// Publish sends payload to every subscriber of channel
func (c *RedisChannel) Publish(ctx context.Context, channel string, payload []byte) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrChannelClosed
	}
	if err := c.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

// OnMessage subscribes to channel and dispatches messages to handler on a
// dedicated goroutine until ctx is done or the channel is closed.
func (c *RedisChannel) OnMessage(ctx context.Context, channel string, handler func([]byte)) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrChannelClosed
	}
	c.mu.Unlock()

	pubsub := c.client.Subscribe(ctx, channel)
	// Receive blocks until the subscription is confirmed by the server
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("redis subscribe %s: %w", channel, err)
	}

	c.mu.Lock()
	c.subs = append(c.subs, pubsub)
	c.mu.Unlock()

	messages := pubsub.Channel()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				handler([]byte(msg.Payload))
			}
		}
	}()

	utils.Debug("events: redis subscription live", map[string]any{"channel": channel})
	return nil
}

// Close ends every subscription and, when owned, the client connection
func (c *RedisChannel) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, s := range subs {
		_ = s.Close()
	}
	c.wg.Wait()

	if c.ownsCli {
		return c.client.Close()
	}
	return nil
}
