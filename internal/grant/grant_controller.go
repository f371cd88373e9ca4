package grant

import (
	"encoding/json"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/rv2class/pkg/controller/grant"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgMissingFields    = "Missing roomName or participantName"
	msgServerConfig     = "Server configuration error"
	msgTokenFailed      = "Failed to generate token"
)

type grantController struct {
	tokenService *TokenService
	livekit      variables.LiveKitSource
	logger       *slog.Logger
}

func (ctrl *grantController) GrantControllerIssueToken(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, protocol.NewErrorResponse(msgMethodNotAllowed))
	}

	cfg, err := ctrl.livekit.LiveKit()
	if err != nil {
		ctrl.logger.Error("livekit is not configured", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, protocol.NewErrorResponse(msgServerConfig))
	}

	var req JoinRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, protocol.NewErrorResponse(msgMissingFields))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, protocol.NewErrorResponse(msgMissingFields))
	}

	token, err := ctrl.tokenService.Issue(cfg, req)
	if err != nil {
		ctrl.logger.Error("token generation failed",
			slog.String("room", req.RoomName),
			slog.String("err", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, protocol.NewErrorResponse(msgTokenFailed))
	}

	ctrl.logger.Debug("token issued",
		slog.String("room", req.RoomName),
		slog.String("participant", req.ParticipantName),
	)

	return c.JSON(http.StatusOK, &grant.TokenResponse{
		Token: token,
		WsUrl: cfg.URL,
	})
}

func (ctrl *grantController) Resolve(router protocol.HttpRouter) error {
	spec, err := grant.GetSwagger()
	if err != nil {
		return err
	}

	// Every method reaches the handler so non-POST requests get our 405 body.
	// POST is then replaced by the generated route.
	router.Any("/api/token", ctrl.GrantControllerIssueToken)
	grant.RegisterHandlers(router, ctrl)
	protocol.ServeSpec(router, "grant", spec)
	return nil
}

var (
	_ grant.ServerInterface   = (*grantController)(nil)
	_ protocol.HttpResolvable = (*grantController)(nil)
)

type NewGrantControllerParams struct {
	fx.In

	TokenService *TokenService
	LiveKit      variables.LiveKitSource
	Logger       *slog.Logger
}

func NewGrantController(params NewGrantControllerParams) *grantController {
	return &grantController{
		tokenService: params.TokenService,
		livekit:      params.LiveKit,
		logger:       params.Logger,
	}
}
