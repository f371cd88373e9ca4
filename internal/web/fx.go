package web

import (
	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"go.uber.org/fx"
)

var Module = fx.Module("web",
	fx.Provide(
		fx.Annotate(NewRenderer, fx.As(new(echo.Renderer))),
		protocol.AsHttpController(NewPageController),
	),
)
