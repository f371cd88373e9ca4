package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

type router_Params struct {
	fx.In

	Controllers []protocol.HttpResolvable `group:"http.controller"`
	Renderer    echo.Renderer             `optional:"true"`
	Logger      *slog.Logger
	Server      *variables.Server
}

func httpErrorHandler(e *echo.Echo, logger *slog.Logger) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		logger.Error(err.Error(),
			slog.String("method", c.Request().Method),
			slog.String("uri", c.Request().RequestURI),
		)
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

// corsSkipper leaves OPTIONS requests that are not CORS preflights to the
// routed handlers.
func corsSkipper(c echo.Context) bool {
	r := c.Request()
	if r.Method != http.MethodOptions {
		return false
	}
	return r.Header.Get(echo.HeaderOrigin) == "" || r.Header.Get(echo.HeaderAccessControlRequestMethod) == ""
}

func NewRouter(params router_Params) (*echo.Echo, error) {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = httpErrorHandler(router, params.Logger)
	if params.Renderer != nil {
		router.Renderer = params.Renderer
	}

	router.Use(
		middleware.Recover(),
		middleware.RequestID(),
		requestLogger(params.Logger),
		middleware.CORSWithConfig(middleware.CORSConfig{
			Skipper:      corsSkipper,
			AllowOrigins: params.Server.AllowOrigins(),
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}),
	)

	for _, controller := range params.Controllers {
		if err := controller.Resolve(router); err != nil {
			return nil, err
		}
	}

	return router, nil
}

type httpServer_Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Router    *echo.Echo
	Logger    *slog.Logger
	Server    *variables.Server
}

func httpServer(params httpServer_Params) {
	addr := fmt.Sprintf(":%s", params.Server.HTTPPort)

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			params.Router.Listener = listener

			go func() {
				if err := params.Router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					params.Logger.Error("http server stopped", slog.String("err", err.Error()))
				}
			}()

			params.Logger.Info("http server started", slog.String("addr", listener.Addr().String()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Router.Shutdown(ctx)
		},
	})
}

var HttpModule = fx.Module("http",
	fx.Provide(NewRouter),
	fx.Invoke(httpServer),
)
