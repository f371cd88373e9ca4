package main

import (
	"github.com/romashorodok/rv2class/internal/grant"
	"github.com/romashorodok/rv2class/internal/health"
	"github.com/romashorodok/rv2class/internal/room"
	"github.com/romashorodok/rv2class/internal/web"
	"github.com/romashorodok/rv2class/pkg/service"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func appOptions() []fx.Option {
	return []fx.Option{
		service.ConfigModule,
		service.LoggerModule,

		grant.Module,
		room.Module,
		web.Module,
		health.Module,

		service.HttpModule,
	}
}

func serve() error {
	app := fx.New(appOptions()...)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}
