// Package pubsub publishes order events to Google Pub/Sub, to a local push
// endpoint, or nowhere.
package pubsub

import (
	"context"
	"log/slog"

	"pos/config"
	"pos/internal/domain/constants"
	"pos/internal/domain/service"

	"go.uber.org/fx"
)

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("Order event dropped, publishing disabled",
		slog.String("type", string(event.Type)),
		slog.String("order_number", event.OrderNumber),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes
// it on stop. Without a provider, events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		logger.Info("Order events disabled")

		return &noopPublisher{logger: logger}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	if cfg.Provider == constants.PubSubProviderGoogle {
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Info("Pushing order events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	}

	params.Lc.Append(fx.StopHook(func() error {
		logger.Info("Closing order event publisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
