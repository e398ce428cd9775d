package config

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewLogger builds the application logger. The same instance doubles as the
// fx event logger in pkg/routes.
func NewLogger(lc fx.Lifecycle) (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
