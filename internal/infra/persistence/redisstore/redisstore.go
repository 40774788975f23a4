// Package redisstore implements the key-value backend on Redis, for registers
// that share state with other processes.
package redisstore

import (
	"context"
	"log/slog"

	"pos/config"
	"pos/internal/domain/lifecycle"
	"pos/internal/domain/repository"
	"pos/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Store keeps every value under a configurable key prefix.
type Store struct {
	client *redis.Client
	prefix string
}

var _ repository.KVStore = (*Store)(nil)

// New creates a store on an existing client.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// NewClient builds a client from configuration and ties it to the fx lifecycle.
func NewClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Storage.Redis.Addr,
		Password: cfg.Storage.Redis.Password,
		DB:       cfg.Storage.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Storage.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

// SetMany writes every entry in a MULTI/EXEC transaction.
func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, s.key(key), value, 0)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis transaction")
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}
