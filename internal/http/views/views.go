// Package views holds the server-rendered HTML pages and the renderer that serves them.
package views

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

// Must is New for the composition root and tests; it panics on a broken template.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic("parse templates: " + err.Error())
	}
	return r
}

// Render writes the named page with the given status.
func (r *Renderer) Render(c *gin.Context, status int, name string, data any) {
	c.Render(status, render.HTML{Template: r.templates, Name: name, Data: data})
}
