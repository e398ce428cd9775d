package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"CampusHire/internal/bootstrap"
	"CampusHire/pkg/routes"
)

func main() {
	bootstrap.LoadEnv()

	app := fx.New(
		routes.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)
	app.Run()
}
