package service

import (
	"io"
	"log/slog"
	"os"

	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

type logger_Params struct {
	fx.In

	Server *variables.Server
}

var loggerWriter io.Writer = os.Stdout

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))
}

func logger(params logger_Params) *slog.Logger {
	return NewLogger(loggerWriter, params.Server.Level())
}

var LoggerModule = fx.Module("logger", fx.Provide(
	logger,
))
