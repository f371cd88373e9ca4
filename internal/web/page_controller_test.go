package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/stretchr/testify/require"
)

func newPageRouter(t *testing.T, server *variables.Server) *echo.Echo {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)

	router := echo.New()
	router.Renderer = renderer

	ctrl := NewPageController(NewPageControllerParams{
		Server: server,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, ctrl.Resolve(router))
	return router
}

func postForm(router *echo.Echo, values url.Values) *httptest.ResponseRecorder {
	httpReq := httptest.NewRequest(http.MethodPost, "/join", strings.NewReader(values.Encode()))
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)
	return rec
}

func TestRoomPath(t *testing.T) {
	req := require.New(t)
	req.Equal("/room/math-lesson-1?name=Alice", RoomPath("math-lesson-1", "Alice"))
	req.Equal("/room/math%20lesson?name=Ms+Smith", RoomPath("math lesson", "Ms Smith"))
}

func TestPageControllerJoin(t *testing.T) {
	router := newPageRouter(t, &variables.Server{})

	tests := []struct {
		name     string
		values   url.Values
		status   int
		location string
	}{
		{
			name:     "valid form",
			values:   url.Values{"roomName": {"math-lesson-1"}, "userName": {"Alice"}},
			status:   http.StatusSeeOther,
			location: "/room/math-lesson-1?name=Alice",
		},
		{
			name:     "trimmed values",
			values:   url.Values{"roomName": {"  english  "}, "userName": {" Bob "}},
			status:   http.StatusSeeOther,
			location: "/room/english?name=Bob",
		},
		{
			name:     "slash in room name",
			values:   url.Values{"roomName": {"math/lesson"}, "userName": {"Alice"}},
			status:   http.StatusSeeOther,
			location: "/room/math%2Flesson?name=Alice",
		},
		{
			name:   "empty form",
			values: url.Values{},
			status: http.StatusBadRequest,
		},
		{
			name:   "blank user name",
			values: url.Values{"roomName": {"math-lesson-1"}, "userName": {"   "}},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			rec := postForm(router, tt.values)

			req.Equal(tt.status, rec.Code)
			if tt.location != "" {
				req.Equal(tt.location, rec.Header().Get(echo.HeaderLocation))
				return
			}
			req.Contains(rec.Body.String(), msgJoinFormInvalid)
		})
	}
}

func TestPageControllerJoinKeepsInput(t *testing.T) {
	req := require.New(t)
	rec := postForm(newPageRouter(t, &variables.Server{}), url.Values{"roomName": {"math-lesson-1"}})

	req.Equal(http.StatusBadRequest, rec.Code)
	req.Contains(rec.Body.String(), `value="math-lesson-1"`)
}

func TestPageControllerQuickJoin(t *testing.T) {
	req := require.New(t)
	router := newPageRouter(t, &variables.Server{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quick-join", nil))

	req.Equal(http.StatusSeeOther, rec.Code)
	req.Regexp(regexp.MustCompile(`^/room/room-[0-9a-f]{6}\?name=user-[0-9a-f]{4}$`), rec.Header().Get(echo.HeaderLocation))
}

func TestPageControllerRoom(t *testing.T) {
	router := newPageRouter(t, &variables.Server{PublicURL: "https://class.example.com"})

	t.Run("without name", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/math-lesson-1", nil))

		req.Equal(http.StatusSeeOther, rec.Code)
		req.Equal("/?room=math-lesson-1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("renders session", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/math-lesson-1?name=Alice", nil))

		req.Equal(http.StatusOK, rec.Code)
		body := rec.Body.String()
		req.Contains(body, `data-room-name="math-lesson-1"`)
		req.Contains(body, `data-participant-name="Alice"`)
		req.Contains(body, `https://class.example.com/room/math-lesson-1?name=Guest`)
	})

	t.Run("slash in room name", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/math%2Flesson?name=Alice", nil))

		req.Equal(http.StatusOK, rec.Code)
		body := rec.Body.String()
		req.Contains(body, `data-room-name="math/lesson"`)
		req.Contains(body, `https://class.example.com/room/math%2Flesson?name=Guest`)
		req.NotContains(body, "%252F")
	})

	t.Run("slash in room name without name", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/math%2Flesson", nil))

		req.Equal(http.StatusSeeOther, rec.Code)
		req.Equal("/?room=math%2Flesson", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("escapes participant name", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/math-lesson-1?name=%3Cscript%3E", nil))

		req.Equal(http.StatusOK, rec.Code)
		req.NotContains(rec.Body.String(), `data-participant-name="<script>"`)
	})
}

func TestPageControllerRoomInviteFromRequest(t *testing.T) {
	req := require.New(t)
	router := newPageRouter(t, &variables.Server{})

	httpReq := httptest.NewRequest(http.MethodGet, "/room/english?name=Bob", nil)
	httpReq.Host = "localhost:8080"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "http://localhost:8080/room/english?name=Guest")
}

func TestPageControllerIndex(t *testing.T) {
	req := require.New(t)
	router := newPageRouter(t, &variables.Server{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?room=math-lesson-1", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `value="math-lesson-1"`)
	req.Contains(rec.Body.String(), `action="/join"`)
}

func TestStaticAssets(t *testing.T) {
	router := newPageRouter(t, &variables.Server{})

	for _, asset := range []string{"/static/style.css", "/static/room.js", "/static/lobby.js"} {
		t.Run(asset, func(t *testing.T) {
			req := require.New(t)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, asset, nil))
			req.Equal(http.StatusOK, rec.Code)
			req.NotEmpty(rec.Body.Bytes())
		})
	}
}
