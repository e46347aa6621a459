package bootstrap

import (
	"context"
	"log/slog"

	"studio-booking/internal/infra/broker"
	"studio-booking/internal/infra/notify"
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a nil interface when RABBITMQ_URL is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (notify.EventPublisher, error) {
	if cfg.Broker.URL == "" {
		slog.Info("RABBITMQ_URL not set, domain events will not be published")
		return nil, nil
	}

	pub, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pub.Close()
			return nil
		},
	})

	return pub, nil
}
