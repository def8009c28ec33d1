// Package web serves the portfolio site over HTTP with gin. Page state
// such as the active position or the project filters lives in the query
// string; HTMX swaps the rendered fragments in place.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/Ayush27641/portfolio/internal/analytics"
	"github.com/Ayush27641/portfolio/internal/config"
	"github.com/Ayush27641/portfolio/internal/contact"
	"github.com/Ayush27641/portfolio/internal/portfolio"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires the server's collaborators.
type Options struct {
	Catalog    *portfolio.Catalog
	Tracker    *analytics.Tracker
	Contact    *contact.Service
	Messages   *contact.Store
	Admin      config.Admin
	AdminToken string
	// ImagesDir is served under /images when set.
	ImagesDir string
}

// Server is the site's HTTP handler.
type Server struct {
	catalog    *portfolio.Catalog
	tracker    *analytics.Tracker
	contact    *contact.Service
	messages   *contact.Store
	admin      config.Admin
	adminToken string
	engine     *gin.Engine
}

// New builds the gin engine and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}
	if opts.AdminToken == "" {
		return nil, errors.New("web: admin token is required")
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		catalog:    opts.Catalog,
		tracker:    opts.Tracker,
		contact:    opts.Contact,
		messages:   opts.Messages,
		admin:      opts.Admin,
		adminToken: opts.AdminToken,
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, errors.Wrap(err, "static assets")
	}
	r.StaticFS("/static", http.FS(static))
	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}

	r.Use(s.visitorTracking())
	s.setupRoutes(r)
	s.setupAdminRoutes(r)

	s.engine = r
	return s, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
		"inc":  func(i int) int { return i + 1 },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/positions", s.positions)
	r.GET("/projects", s.projects)
	r.GET("/projects/:id/visit", s.visitProject)

	api := r.Group("/api")
	api.GET("/positions", s.apiPositions)
	api.GET("/projects", s.apiProjects)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"path": c.Request.URL.Path,
		})
	})
}

// visitorTracking records full page views with hashed IPs. HTMX fragment
// requests and redirects are not page views.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.tracker == nil || c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}
		if c.GetHeader("HX-Request") == "true" {
			return
		}
		path := c.Request.URL.Path
		if !analytics.ShouldTrack(path, c.GetHeader("DNT")) {
			return
		}
		if err := s.tracker.RecordVisit(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path); err != nil {
			log.Printf("Error recording visitor: %v", err)
		}
	}
}
