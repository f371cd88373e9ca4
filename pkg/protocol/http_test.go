package protocol

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPathParam(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "/rooms/math-lesson-1", want: "math-lesson-1"},
		{target: "/rooms/math%20lesson", want: "math lesson"},
		{target: "/rooms/math%2Flesson", want: "math/lesson"},
		{target: "/rooms/100%25", want: "100%"},
		{target: "/rooms/a%2Fb%25c", want: "a/b%c"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			req := require.New(t)
			router := echo.New()

			var got string
			router.GET("/rooms/:roomName", func(c echo.Context) error {
				value, err := PathParam(c, "roomName")
				if err != nil {
					return err
				}
				got = value
				return c.NoContent(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			req.Equal(http.StatusOK, rec.Code)
			req.Equal(tt.want, got)
		})
	}
}
