package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/rv2class/pkg/protocol"
	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

const (
	templateIndex = "index.html"
	templateRoom  = "room.html"

	msgJoinFormInvalid = "Please enter a room name and your name"
	inviteGuestName    = "Guest"
)

var (
	ErrJoinFormInvalid = errors.New("join form is invalid")

	validate = validator.New()
)

type JoinForm struct {
	RoomName string `form:"roomName" validate:"required"`
	UserName string `form:"userName" validate:"required"`
}

func (f *JoinForm) Validate() error {
	f.RoomName = strings.TrimSpace(f.RoomName)
	f.UserName = strings.TrimSpace(f.UserName)
	if err := validate.Struct(f); err != nil {
		return errors.Join(ErrJoinFormInvalid, err)
	}
	return nil
}

type indexPage struct {
	RoomName string
	UserName string
	Error    string
}

type roomPage struct {
	RoomName        string
	ParticipantName string
	InviteURL       string
}

// RoomPath is the browser route of a room for the given display name.
func RoomPath(roomName, participantName string) string {
	return "/room/" + url.PathEscape(roomName) + "?name=" + url.QueryEscape(participantName)
}

func randomSuffix(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

type pageController struct {
	server *variables.Server
	logger *slog.Logger
}

func (ctrl *pageController) PageControllerIndex(c echo.Context) error {
	return c.Render(http.StatusOK, templateIndex, &indexPage{
		RoomName: strings.TrimSpace(c.QueryParam("room")),
	})
}

func (ctrl *pageController) PageControllerJoin(c echo.Context) error {
	var form JoinForm
	if err := c.Bind(&form); err != nil {
		ctrl.logger.Debug("unable bind join form", slog.String("err", err.Error()))
	}

	if err := form.Validate(); err != nil {
		return c.Render(http.StatusBadRequest, templateIndex, &indexPage{
			RoomName: form.RoomName,
			UserName: form.UserName,
			Error:    msgJoinFormInvalid,
		})
	}

	return c.Redirect(http.StatusSeeOther, RoomPath(form.RoomName, form.UserName))
}

func (ctrl *pageController) PageControllerQuickJoin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, RoomPath("room-"+randomSuffix(6), "user-"+randomSuffix(4)))
}

func (ctrl *pageController) baseURL(c echo.Context) string {
	if ctrl.server.PublicURL != "" {
		return ctrl.server.PublicURL
	}
	return c.Scheme() + "://" + c.Request().Host
}

func (ctrl *pageController) PageControllerRoom(c echo.Context) error {
	roomName, err := protocol.PathParam(c, "roomName")
	if err != nil {
		ctrl.logger.Debug("unable decode room name", slog.String("err", err.Error()))
		return c.Redirect(http.StatusSeeOther, "/")
	}
	roomName = strings.TrimSpace(roomName)
	name := strings.TrimSpace(c.QueryParam("name"))

	if roomName == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if name == "" {
		return c.Redirect(http.StatusSeeOther, "/?room="+url.QueryEscape(roomName))
	}

	return c.Render(http.StatusOK, templateRoom, &roomPage{
		RoomName:        roomName,
		ParticipantName: name,
		InviteURL:       ctrl.baseURL(c) + RoomPath(roomName, inviteGuestName),
	})
}

func (ctrl *pageController) Resolve(router protocol.HttpRouter) error {
	router.GET("/", ctrl.PageControllerIndex)
	router.POST("/join", ctrl.PageControllerJoin)
	router.GET("/quick-join", ctrl.PageControllerQuickJoin)
	router.GET("/room/:roomName", ctrl.PageControllerRoom)
	router.StaticFS("/static", staticFS())
	return nil
}

var _ protocol.HttpResolvable = (*pageController)(nil)

type NewPageControllerParams struct {
	fx.In

	Server *variables.Server
	Logger *slog.Logger
}

func NewPageController(params NewPageControllerParams) *pageController {
	return &pageController{
		server: params.Server,
		logger: params.Logger,
	}
}
