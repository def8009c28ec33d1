package web

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ayush27641/portfolio/internal/portfolio"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type positionEntry struct {
	portfolio.Position
	Active bool
	Href   string
}

type positionsView struct {
	Entries         []positionEntry
	Active          portfolio.Position
	HasActive       bool
	ActiveIndex     int
	Total           int
	ScrollTarget    int
	HasScrollTarget bool
}

func newPositionsView(sel *portfolio.Selector) positionsView {
	v := positionsView{ActiveIndex: sel.CurrentIndex()}
	for _, p := range sel.Positions() {
		v.Entries = append(v.Entries, positionEntry{
			Position: p,
			Active:   sel.IsActive(p.ID),
			Href:     "/positions?id=" + strconv.Itoa(p.ID),
		})
	}
	v.Total = len(v.Entries)
	v.Active, v.HasActive = sel.Active()
	v.ScrollTarget, v.HasScrollTarget = sel.ScrollTarget()
	return v
}

type tagLink struct {
	Name         string
	Selected     bool
	PageHref     string
	FragmentHref string
}

type projectsView struct {
	Query        string
	Tag          string
	HasTag       bool
	ShowAll      bool
	Tags         []tagLink
	Projects     []portfolio.Project
	VisibleCount int
	HasMore      bool
	Remaining    int
	AllSelected  bool
	AllHref      string
	AllPage      string
	ToggleHref   string
	TogglePage   string
	ResetHref    string
}

// projectsQuery encodes browser state the way the /projects handler reads it.
func projectsQuery(q, tag string, all bool) string {
	v := url.Values{}
	if q != "" {
		v.Set("q", q)
	}
	if tag != "" {
		v.Set("tag", tag)
	}
	if all {
		v.Set("all", "1")
	}
	if enc := v.Encode(); enc != "" {
		return "?" + enc
	}
	return ""
}

func newProjectsView(b *portfolio.Browser, filterTags []string) projectsView {
	tag, hasTag := b.Tag()
	v := projectsView{
		Query:    b.Query(),
		Tag:      tag,
		HasTag:   hasTag,
		ShowAll:  b.ShowAll(),
		Projects: b.Displayed(),
		HasMore:  b.HasMore(),
	}
	v.VisibleCount = len(b.Visible())
	v.Remaining = b.Remaining()

	for _, t := range filterTags {
		next := t
		if b.TagSelected(t) {
			next = ""
		}
		q := projectsQuery(b.Query(), next, b.ShowAll())
		v.Tags = append(v.Tags, tagLink{
			Name:         t,
			Selected:     b.TagSelected(t),
			PageHref:     "/" + q + "#projects",
			FragmentHref: "/projects" + q,
		})
	}

	all := projectsQuery(b.Query(), "", b.ShowAll())
	v.AllSelected = !hasTag
	v.AllHref = "/projects" + all
	v.AllPage = "/" + all + "#projects"

	q := projectsQuery(b.Query(), tag, !b.ShowAll())
	v.ToggleHref = "/projects" + q
	v.TogglePage = "/" + q + "#projects"
	v.ResetHref = "/projects"
	return v
}

// browserFromQuery rebuilds the project filter state from the request.
func (s *Server) browserFromQuery(c *gin.Context) *portfolio.Browser {
	b := s.catalog.NewBrowser()
	b.SetQuery(c.Query("q"))
	if tag := c.Query("tag"); tag != "" {
		b.SetTag(tag)
	} else {
		b.ClearTag()
	}
	b.SetShowAll(c.Query("all") == "1")
	return b
}

// selectorFromQuery rebuilds the position selection from the request.
// The fragment is only requested once the section is revealed, so the
// visibility trigger fires here.
func (s *Server) selectorFromQuery(c *gin.Context) (*portfolio.Selector, error) {
	sel := s.catalog.NewSelector()
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(portfolio.ErrNotFound, "position %q", raw)
		}
		if !sel.Select(id) {
			return nil, errors.Wrapf(portfolio.ErrNotFound, "position %d", id)
		}
	}
	sel.ActivateOnVisible()
	return sel, nil
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":  s.catalog.Profile(),
		"projects": newProjectsView(s.browserFromQuery(c), s.catalog.FilterTags()),
	})
}

func (s *Server) positions(c *gin.Context) {
	sel, err := s.selectorFromQuery(c)
	if err != nil {
		c.String(http.StatusNotFound, "unknown position")
		return
	}
	c.HTML(http.StatusOK, "positions.html", newPositionsView(sel))
}

func (s *Server) projects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", newProjectsView(s.browserFromQuery(c), s.catalog.FilterTags()))
}

// visitProject counts an outbound click and redirects to the project link.
func (s *Server) visitProject(c *gin.Context) {
	p, err := s.catalog.Project(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"path": c.Request.URL.Path,
		})
		return
	}

	if s.tracker != nil && c.GetHeader("DNT") != "1" {
		if err := s.tracker.RecordClick(c.Request.Context(), p.ID); err != nil {
			log.Printf("Error recording click on %s: %v", p.ID, err)
		}
	}

	c.Header("Referrer-Policy", "no-referrer")
	c.Redirect(http.StatusFound, p.URL)
}

func (s *Server) apiPositions(c *gin.Context) {
	sel, err := s.selectorFromQuery(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	activeID, _ := sel.ActiveID()
	c.JSON(http.StatusOK, gin.H{
		"positions": sel.Positions(),
		"active_id": activeID,
	})
}

func (s *Server) apiProjects(c *gin.Context) {
	b := s.browserFromQuery(c)
	tag, _ := b.Tag()
	c.JSON(http.StatusOK, gin.H{
		"query":         b.Query(),
		"tag":           tag,
		"show_all":      b.ShowAll(),
		"visible_count": len(b.Visible()),
		"displayed":     b.Displayed(),
		"has_more":      b.HasMore(),
		"remaining":     b.Remaining(),
	})
}
