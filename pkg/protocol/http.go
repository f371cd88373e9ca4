package protocol

import (
	"net/http"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
	echo "github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const httpControllerTag = `group:"http.controller"`

type HttpRouter = *echo.Echo

// HttpResolvable registers its routes on the shared router.
type HttpResolvable interface {
	Resolve(HttpRouter) error
}

// AsHttpController provides the constructor result into the controller
// group consumed by the http module.
func AsHttpController(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(HttpResolvable)),
		fx.ResultTags(httpControllerTag),
	)
}

// ErrorResponse is the body of every failed JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// PathParam returns a decoded path parameter. Echo routes on the raw path
// when it carries escapes such as %2F and then hands out the raw segment.
func PathParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

// ServeSpec publishes a controller's OpenAPI document at
// /api/openapi/<name>.json.
func ServeSpec(router HttpRouter, name string, spec *openapi3.T) {
	spec.Servers = nil
	router.GET("/api/openapi/"+name+".json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, spec)
	})
}
