package app

import (
	"time"

	"go.uber.org/fx"

	"clubdesk.app/backend/internal/app/appconfig"
	"clubdesk.app/backend/internal/app/appcontext"
	"clubdesk.app/backend/internal/controller"
	"clubdesk.app/backend/internal/infra"
	"clubdesk.app/backend/internal/model/cache"
	"clubdesk.app/backend/internal/pkg/logger"
	"clubdesk.app/backend/internal/repo"
	"clubdesk.app/backend/internal/server"
	"clubdesk.app/backend/internal/service"
	"clubdesk.app/backend/internal/workers/eventwkr"
	"clubdesk.app/backend/internal/workers/sweepwkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Caches
		fx.Provide(cache.New),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// Workers
		fx.Invoke(eventwkr.Start),
		fx.Invoke(sweepwkr.Start),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
