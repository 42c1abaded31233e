package fx

import (
	"lcu-scout/internal/api"
	"lcu-scout/internal/config"
	"lcu-scout/internal/console"
	"lcu-scout/internal/discovery"
	"lcu-scout/internal/logger"
	"lcu-scout/internal/service"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(logger.New),
	// lcu
	fx.Provide(discovery.Locate),
	fx.Provide(api.NewLCUClient),
	// svc
	fx.Provide(service.NewReportService),
	// ui
	fx.Provide(console.NewConsole),
	fx.Invoke(config.Log),
)

var _ fxevent.Logger = (*EventLogger)(nil)
