package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	echo "github.com/labstack/echo/v4"
)

//go:embed templates/*.html static/*
var assets embed.FS

type templateRenderer struct {
	templates *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

var _ echo.Renderer = (*templateRenderer)(nil)

func NewRenderer() (*templateRenderer, error) {
	templates, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &templateRenderer{templates: templates}, nil
}

func staticFS() fs.FS {
	return echo.MustSubFS(assets, "static")
}
