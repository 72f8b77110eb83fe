// SPDX-License-Identifier: MIT

package execution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces execution keys.
const DefaultRedisPrefix = "lvtrace:execution:"

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisTTL sets the key expiry. Panics unless ttl is positive: executions
// are never stored in Redis without an expiry.
func WithRedisTTL(ttl time.Duration) RedisOption {
	if ttl <= 0 {
		panic("execution: WithRedisTTL(non-positive)")
	}
	return func(s *RedisStore) { s.ttl = ttl }
}

// WithRedisPrefix sets the key prefix. Panics on an empty prefix.
func WithRedisPrefix(prefix string) RedisOption {
	if prefix == "" {
		panic("execution: WithRedisPrefix(empty)")
	}
	return func(s *RedisStore) { s.prefix = prefix }
}

// RedisStore keeps each execution as a JSON string with a TTL, plus a sorted
// set index scored by expiry time.
type RedisStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore dials a Redis server.
func NewRedisStore(addr, password string, db int, opts ...RedisOption) *RedisStore {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return NewRedisStoreFromClient(client, opts...)
}

// NewRedisStoreFromClient wraps an existing client. The TTL defaults to one hour.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: DefaultRedisPrefix,
		ttl:    time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

func (s *RedisStore) indexKey() string { return s.prefix + "index" }

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Create writes e and indexes it in a single pipeline.
func (s *RedisStore) Create(ctx context.Context, e *Execution) error {
	if e.ID == "" {
		return ErrEmptyID
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("execution: marshal %s: %w", e.ID, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(e.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(time.Now().Add(s.ttl).Unix()),
		Member: e.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("execution: redis save %s: %w", e.ID, err)
	}

	return nil
}

// Get loads the execution stored under id.
func (s *RedisStore) Get(ctx context.Context, id string) (*Execution, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("execution: redis get %s: %w", id, err)
	}

	var e Execution
	if err := json.Unmarshal(val, &e); err != nil {
		return nil, fmt.Errorf("execution: unmarshal %s: %w", id, err)
	}

	return &e, nil
}

// Delete removes the execution and its index entry.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	del := pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("execution: redis delete %s: %w", id, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// List prunes index entries past their expiry, then loads the remaining
// executions. Keys that expired ahead of their index entry are skipped.
func (s *RedisStore) List(ctx context.Context) ([]Summary, error) {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", "("+now).Err(); err != nil {
		return nil, fmt.Errorf("execution: redis prune: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("execution: redis index: %w", err)
	}
	if len(ids) == 0 {
		return []Summary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("execution: redis mget: %w", err)
	}

	out := make([]Summary, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var e Execution
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("execution: unmarshal %s: %w", ids[i], err)
		}
		out = append(out, e.Summary())
	}
	sortSummaries(out)

	return out, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
