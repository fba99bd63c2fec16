package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisPrefix namespaces the keys in a shared Redis database.
const redisPrefix = "finanzas:"

// Redis stores documents as plain Redis strings.
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedis connects to addr and checks the connection.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("cannot open redis store: missing address")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cannot connect to redis %q: %w", addr, err)
	}
	return &Redis{client: client, ctx: ctx}, nil
}

func (r *Redis) Load(key string, v any) error {
	raw, err := r.client.Get(r.ctx, redisPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: cannot get %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("load error: invalid document %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("persist error: cannot encode %q: %w", key, err)
	}
	if err := r.client.Set(r.ctx, redisPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("persist error: cannot set %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error { return r.client.Close() }
