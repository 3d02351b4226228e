// SPDX-License-Identifier: Apache-2.0

// Package session implements the server-side session layer: a key-value
// store client, a signed token codec, and the session manager tying the two
// together. Sessions are owned by the key-value store; the signed token is a
// capability handed to the client.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
)

// KV abstracts the remote key-value store operations the session manager
// needs. Get returns ("", false, nil) for a missing key so that callers can
// distinguish absence from transport failures.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// redisKV is the Redis-backed implementation of [KV].
type redisKV struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisKV connects to the Redis server described by cfg and returns a
// [KV] backed by it. The connection is verified with a ping before the
// client is handed out.
func NewRedisKV(ctx context.Context, cfg config.Redis, log *logger.Logger) (KV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("addr", cfg.Addr).Msg("error connecting session store (ping)")
		return nil, fmt.Errorf("error connecting session store: %w", err)
	}
	log.Info().Str("addr", cfg.Addr).Msg("connected to session store successfully")

	return &redisKV{client: client, logger: log}, nil
}

func (r *redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session store get: %w", err)
	}

	return value, true, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("session store set: %w", err)
	}

	return nil
}

// Delete is idempotent: removing a key that does not exist is not an error.
func (r *redisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("session store delete: %w", err)
	}

	return nil
}

func (r *redisKV) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("session store expire: %w", err)
	}

	return nil
}
