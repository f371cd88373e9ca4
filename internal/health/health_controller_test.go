package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestHealthControllerStatus(t *testing.T) {
	req := require.New(t)
	router := echo.New()
	req.NoError(NewHealthController().Resolve(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"status":"healthy"}`, rec.Body.String())
}

func TestHealthControllerSpec(t *testing.T) {
	req := require.New(t)
	router := echo.New()
	req.NoError(NewHealthController().Resolve(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/openapi/health.json", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"operationId":"HealthControllerStatus"`)
}
