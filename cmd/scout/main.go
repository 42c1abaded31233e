package main

import (
	"context"

	"lcu-scout/internal/console"
	"lcu-scout/internal/constants"
	fxmodules "lcu-scout/internal/fx"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.WithLogger(fxmodules.NewEventLogger),
		fx.StopTimeout(constants.ShutdownTimeout),
		fx.Invoke(runConsole),
	).Run()
}

func runConsole(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	c *console.Console,
	logger zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := c.Run(ctx); err != nil {
					logger.Error().Err(err).Msg("console stopped")
					code = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Error().Err(err).Msg("shutdown failed")
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			logger.Info().Msg("bye")
			return nil
		},
	})
}
