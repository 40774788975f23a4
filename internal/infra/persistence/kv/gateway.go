// Package kv is the persistence gateway: it serializes state slices to JSON
// and stores them in a repository.KVStore. Failures are logged and reported
// as false, never returned to the caller.
package kv

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"

	"pos/config"
	"pos/internal/domain/repository"
	"pos/internal/errors"

	"go.uber.org/fx"
)

// FailureRecorder counts failed loads and saves.
type FailureRecorder interface {
	PersistenceFailed(key, op string)
}

type noopRecorder struct{}

func (noopRecorder) PersistenceFailed(string, string) {}

// Gateway loads and saves JSON values under string keys.
type Gateway struct {
	store         repository.KVStore
	logger        *slog.Logger
	recorder      FailureRecorder
	maxValueBytes int
}

// GatewayParams holds dependencies for Gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Store    repository.KVStore
	Config   *config.Config
	Logger   *slog.Logger
	Recorder FailureRecorder `optional:"true"`
}

// NewGateway creates a Gateway from fx parameters.
func NewGateway(params GatewayParams) *Gateway {
	return newGateway(params.Store, params.Logger, params.Recorder, params.Config.Storage.MaxValueBytes)
}

func newGateway(store repository.KVStore, logger *slog.Logger, recorder FailureRecorder, maxValueBytes int) *Gateway {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Gateway{
		store:         store,
		logger:        logger.With(slog.String("component", "persistence")),
		recorder:      recorder,
		maxValueBytes: maxValueBytes,
	}
}

// Load decodes the value stored under key into dst, which must be a non-nil
// pointer already holding the default. On a missing key or a decode failure
// dst keeps its default and Load returns false.
func (g *Gateway) Load(ctx context.Context, key string, dst any) bool {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		g.logger.ErrorContext(ctx, "Load target must be a non-nil pointer", slog.String("key", key))

		return false
	}

	raw, err := g.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			g.logger.DebugContext(ctx, "No stored value, using default", slog.String("key", key))

			return false
		}
		g.fail(ctx, key, "load", "Failed to read stored value", err)

		return false
	}

	// Decode into a scratch value so a partial decode never leaks into dst.
	scratch := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		g.fail(ctx, key, "load", "Failed to parse stored value, using default", err)

		return false
	}
	target.Elem().Set(scratch.Elem())

	return true
}

// Save encodes value and writes it under key.
func (g *Gateway) Save(ctx context.Context, key string, value any) bool {
	raw, ok := g.encode(ctx, key, value)
	if !ok {
		return false
	}

	if err := g.store.Set(ctx, key, raw); err != nil {
		g.fail(ctx, key, "save", "Failed to write value", err)

		return false
	}

	return true
}

// SaveMany encodes every value and writes them in one backend call.
// Nothing is written when any value fails to encode.
func (g *Gateway) SaveMany(ctx context.Context, values map[string]any) bool {
	entries := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, ok := g.encode(ctx, key, value)
		if !ok {
			return false
		}
		entries[key] = raw
	}

	if err := g.store.SetMany(ctx, entries); err != nil {
		for key := range entries {
			g.fail(ctx, key, "save", "Failed to write values", err)
		}

		return false
	}

	return true
}

func (g *Gateway) encode(ctx context.Context, key string, value any) ([]byte, bool) {
	raw, err := json.Marshal(value)
	if err != nil {
		g.fail(ctx, key, "save", "Failed to serialize value", err)

		return nil, false
	}

	if g.maxValueBytes > 0 && len(raw) > g.maxValueBytes {
		g.fail(ctx, key, "save", "Value exceeds storage quota",
			errors.Wrapf(repository.ErrQuotaExceeded, "%d bytes > %d", len(raw), g.maxValueBytes))

		return nil, false
	}

	return raw, true
}

func (g *Gateway) fail(ctx context.Context, key, op, msg string, err error) {
	g.recorder.PersistenceFailed(key, op)
	g.logger.ErrorContext(ctx, msg,
		slog.String("key", key),
		slog.String("op", op),
		slog.Any("error", err),
	)
}
