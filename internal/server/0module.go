package server

import (
	"go.uber.org/fx"

	"clubdesk.app/backend/internal/server/httpserver"
	"clubdesk.app/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
