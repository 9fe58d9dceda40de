package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"clubdesk.app/backend/cmd/app/server"
	"clubdesk.app/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "cdbackend",
		Description: "The ClubDesk notification & announcement feed backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as MQ and Redis as state synchronization.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
