package room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/rv2class/pkg/controller/room"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/romashorodok/rv2class/pkg/wsutils"
	"go.uber.org/fx"
)

const (
	msgServerConfig = "Server configuration error"
	msgUnavailable  = "Unable to reach conferencing server"
	msgRoomRequired = "Missing roomName"
)

func toRooms(summaries []RoomSummary) []room.Room {
	result := make([]room.Room, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, room.Room{
			Name:            s.Name,
			Sid:             s.Sid,
			NumParticipants: int64(s.NumParticipants),
			CreatedAt:       s.CreatedAt,
		})
	}
	return result
}

func toParticipants(summaries []ParticipantSummary) []room.Participant {
	result := make([]room.Participant, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, room.Participant{
			Identity:        s.Identity,
			Name:            s.Name,
			JoinedAt:        s.JoinedAt,
			MicrophoneMuted: s.MicrophoneMuted,
		})
	}
	return result
}

type roomController struct {
	rooms    RoomLister
	notifier *RoomNotifier
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func (ctrl *roomController) lookupError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, variables.ErrLiveKitNotConfigured):
		ctrl.logger.Error("livekit is not configured", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, protocol.NewErrorResponse(msgServerConfig))
	case errors.Is(err, ErrRoomNameEmpty):
		return c.JSON(http.StatusBadRequest, protocol.NewErrorResponse(msgRoomRequired))
	default:
		ctrl.logger.Warn("room lookup failed", slog.String("err", err.Error()))
		return c.JSON(http.StatusBadGateway, protocol.NewErrorResponse(msgUnavailable))
	}
}

func (ctrl *roomController) RoomControllerRoomList(c echo.Context) error {
	rooms, err := ctrl.rooms.ListRooms(c.Request().Context())
	if err != nil {
		return ctrl.lookupError(c, err)
	}
	return c.JSON(http.StatusOK, &room.RoomListResponse{Rooms: toRooms(rooms)})
}

func (ctrl *roomController) RoomControllerParticipantList(c echo.Context, roomName string) error {
	participants, err := ctrl.rooms.ListParticipants(c.Request().Context(), roomName)
	if err != nil {
		return ctrl.lookupError(c, err)
	}
	return c.JSON(http.StatusOK, &room.ParticipantListResponse{Participants: toParticipants(participants)})
}

func (ctrl *roomController) RoomControllerRoomNotifier(c echo.Context) error {
	conn, err := ctrl.upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		ctrl.logger.Error("unable upgrade lobby request", slog.String("err", err.Error()))
		return nil
	}

	w := wsutils.NewThreadSafeWriter(conn)
	defer w.Close()

	id := uuid.NewString()
	ctrl.notifier.Listen(id, w)
	defer ctrl.notifier.Stop(id)

	ctrl.logger.Debug("lobby listener joined", slog.String("id", id), slog.String("addr", w.RemoteAddr().String()))

	if err := w.Drain(); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		ctrl.logger.Debug("lobby listener left", slog.String("id", id), slog.String("err", err.Error()))
	}
	return nil
}

func (ctrl *roomController) Resolve(router protocol.HttpRouter) error {
	spec, err := room.GetSwagger()
	if err != nil {
		return err
	}
	room.RegisterHandlers(router, ctrl)
	protocol.ServeSpec(router, "room", spec)
	return nil
}

var (
	_ room.ServerInterface    = (*roomController)(nil)
	_ protocol.HttpResolvable = (*roomController)(nil)
)

type NewRoomControllerParams struct {
	fx.In

	Rooms    RoomLister
	Notifier *RoomNotifier
	Logger   *slog.Logger
}

func NewRoomController(params NewRoomControllerParams) *roomController {
	return &roomController{
		rooms:    params.Rooms,
		notifier: params.Notifier,
		logger:   params.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
