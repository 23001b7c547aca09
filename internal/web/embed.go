// Package web serves the upload page and its static assets.
// Assets are embedded in the binary; a directory override can be configured
// for local development.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// IndexTemplate is the template rendered for GET /.
const IndexTemplate = "index.html"

// StaticPrefix is the URL prefix static assets are served under.
const StaticPrefix = "/static"

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// Options controls where the page server reads its assets from.
type Options struct {
	TemplateDir string // empty: embedded templates
	StaticDir   string // empty: embedded static files
	Version     string
}

// PageData is passed to the index template.
type PageData struct {
	Version      string
	StaticPrefix string
}

// TemplateRenderer adapts html/template to echo.Renderer.
type TemplateRenderer struct {
	templates *template.Template
}

// Render executes the named template.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// GetTemplateFS returns dir as a filesystem, or the embedded templates when dir is empty.
func GetTemplateFS(dir string) (fs.FS, error) {
	return assetFS(templateFiles, "templates", dir)
}

// GetStaticFS returns dir as a filesystem, or the embedded static files when dir is empty.
func GetStaticFS(dir string) (fs.FS, error) {
	return assetFS(staticFiles, "static", dir)
}

func assetFS(embedded embed.FS, root, dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, root)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("asset directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset directory %s: not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// NewTemplateRenderer parses every *.html template in fsys.
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	if tmpl.Lookup(IndexTemplate) == nil {
		return nil, fmt.Errorf("template %s not found", IndexTemplate)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

// RegisterStaticRoutes installs the renderer, the index page on / and the
// static file routes under /static.
func RegisterStaticRoutes(e *echo.Echo, opts Options) error {
	templateFS, err := GetTemplateFS(opts.TemplateDir)
	if err != nil {
		return err
	}
	renderer, err := NewTemplateRenderer(templateFS)
	if err != nil {
		return err
	}

	staticFS, err := GetStaticFS(opts.StaticDir)
	if err != nil {
		return err
	}

	e.Renderer = renderer
	e.StaticFS(StaticPrefix+"/", staticFS)

	page := PageData{
		Version:      opts.Version,
		StaticPrefix: StaticPrefix,
	}
	e.Match([]string{http.MethodGet, http.MethodHead}, "/", func(c echo.Context) error {
		return c.Render(http.StatusOK, IndexTemplate, page)
	})

	return nil
}
