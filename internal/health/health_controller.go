package health

import (
	"net/http"

	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/rv2class/pkg/controller/health"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"go.uber.org/fx"
)

const statusHealthy = "healthy"

type healthController struct{}

func (ctrl *healthController) HealthControllerStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, &health.HealthResponse{Status: statusHealthy})
}

func (ctrl *healthController) Resolve(router protocol.HttpRouter) error {
	spec, err := health.GetSwagger()
	if err != nil {
		return err
	}
	health.RegisterHandlers(router, ctrl)
	protocol.ServeSpec(router, "health", spec)
	return nil
}

var (
	_ health.ServerInterface  = (*healthController)(nil)
	_ protocol.HttpResolvable = (*healthController)(nil)
)

func NewHealthController() *healthController {
	return &healthController{}
}

var Module = fx.Module("health",
	fx.Provide(protocol.AsHttpController(NewHealthController)),
)
