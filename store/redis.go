// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps each document under gamewheel:<name>.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend parses redisURL and checks the connection.
func NewRedisBackend(ctx context.Context, redisURL string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisBackendWithClient(client), nil
}

// NewRedisBackendWithClient wraps an existing client
func NewRedisBackendWithClient(client *redis.Client) *RedisBackend {
	return &RedisBackend{
		client: client,
		prefix: "gamewheel:",
	}
}

func (b *RedisBackend) key(doc Document) string {
	return b.prefix + string(doc)
}

func (b *RedisBackend) Load(ctx context.Context, doc Document) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(doc)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", doc, err)
	}
	return data, nil
}

func (b *RedisBackend) Save(ctx context.Context, doc Document, payload []byte) error {
	if err := b.client.Set(ctx, b.key(doc), payload, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", doc, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
