package main

import (
	"context"
	"fmt"

	"bomul-market/internal/config"
	"bomul-market/internal/events"
	"bomul-market/internal/session"
	"bomul-market/utils"

	"github.com/redis/go-redis/v9"
)

// backends opens the configured external stores and closes them in reverse order
type backends struct {
	cfg     *config.Config
	redis   *redis.Client
	closers []func() error
}

// redisClient is shared by the session store and the broadcast channel
func (b *backends) redisClient(ctx context.Context) (*redis.Client, error) {
	if b.redis != nil {
		return b.redis, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     b.cfg.Redis.Addr,
		Password: b.cfg.Redis.Password,
		DB:       b.cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", b.cfg.Redis.Addr, err)
	}
	b.redis = client
	b.closers = append(b.closers, client.Close)
	return client, nil
}

func (b *backends) sessionKV(ctx context.Context) (session.KVStore, error) {
	switch b.cfg.Session.Backend {
	case config.BackendSQLite:
		kv, err := session.OpenSQLiteKV(b.cfg.Session.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, kv.Close)
		return kv, nil
	case config.BackendRedis:
		client, err := b.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		return session.NewRedisKV(client, b.cfg.Session.Namespace), nil
	default:
		return session.NewMemoryKV(), nil
	}
}

func (b *backends) broadcastChannel(ctx context.Context) (events.Channel, error) {
	var channel events.Channel
	switch b.cfg.Broadcast.Backend {
	case config.BackendRedis:
		client, err := b.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		channel = events.NewRedisChannelFromClient(client)
	case config.BackendNATS:
		nc, err := events.NewNATSChannel(b.cfg.NATS.URL, b.cfg.NATS.ClientName)
		if err != nil {
			return nil, err
		}
		channel = nc
	default:
		channel = events.NewMemoryBroker()
	}
	b.closers = append(b.closers, channel.Close)
	return channel, nil
}

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			utils.Warn("failed to close backend", map[string]any{"error": err.Error()})
		}
	}
}
