package room

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v4"
	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/webhook"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

const msgInvalidWebhook = "Invalid webhook"

// Webhook events that change what the lobby shows.
var lobbyEvents = map[string]struct{}{
	"room_started":       {},
	"room_finished":      {},
	"participant_joined": {},
	"participant_left":   {},
}

type webhookController struct {
	livekit  variables.LiveKitSource
	notifier *RoomNotifier
	logger   *slog.Logger
}

func (ctrl *webhookController) WebhookControllerReceive(c echo.Context) error {
	cfg, err := ctrl.livekit.LiveKit()
	if err != nil {
		ctrl.logger.Error("livekit is not configured", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, protocol.NewErrorResponse(msgServerConfig))
	}

	event, err := webhook.ReceiveWebhookEvent(c.Request(), auth.NewSimpleKeyProvider(cfg.APIKey, cfg.APISecret))
	if err != nil {
		ctrl.logger.Warn("rejected webhook", slog.String("err", errors.Join(ErrInvalidWebhook, err).Error()))
		return c.JSON(http.StatusUnauthorized, protocol.NewErrorResponse(msgInvalidWebhook))
	}

	roomName := event.GetRoom().GetName()
	ctrl.logger.Debug("webhook received",
		slog.String("event", event.GetEvent()),
		slog.String("room", roomName),
		slog.String("participant", event.GetParticipant().GetIdentity()),
	)

	if _, ok := lobbyEvents[event.GetEvent()]; ok && roomName != "" {
		ctrl.notifier.DispatchUpdateRooms(roomName)
	}

	return c.JSON(http.StatusOK, struct{}{})
}

func (ctrl *webhookController) Resolve(router protocol.HttpRouter) error {
	router.POST("/api/livekit/webhook", ctrl.WebhookControllerReceive)
	return nil
}

var _ protocol.HttpResolvable = (*webhookController)(nil)

type NewWebhookControllerParams struct {
	fx.In

	LiveKit  variables.LiveKitSource
	Notifier *RoomNotifier
	Logger   *slog.Logger
}

func NewWebhookController(params NewWebhookControllerParams) *webhookController {
	return &webhookController{
		livekit:  params.LiveKit,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}
