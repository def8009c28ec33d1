package portfolio

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// PageSize is how many projects show before "Show More".
const PageSize = 4

// maxFilterTags caps the quick-filter tag row.
const maxFilterTags = 8

// Project is one entry of the project showcase.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Photo       string   `json:"photo"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags,omitempty"`
	Date        string   `json:"date,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// HasTag reports whether tag is one of the project's tags.
func (p Project) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// Filter returns the projects whose name or description contains query,
// ignoring case, and which carry tag when tag is non-nil. Order is kept.
func Filter(projects []Project, query string, tag *string) []Project {
	fold := cases.Fold()
	q := fold.String(query)

	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if q != "" &&
			!strings.Contains(fold.String(p.Name), q) &&
			!strings.Contains(fold.String(p.Description), q) {
			continue
		}
		if tag != nil && !p.HasTag(*tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Browser holds the filter state of the project showcase: a free-text
// query, at most one selected tag and the show-all toggle.
type Browser struct {
	projects []Project
	query    string
	tag      string
	hasTag   bool
	showAll  bool
}

// NewBrowser returns a browser over projects with no filters applied.
func NewBrowser(projects []Project) *Browser {
	return &Browser{projects: slices.Clone(projects)}
}

// SetQuery replaces the search query.
func (b *Browser) SetQuery(q string) {
	b.query = q
}

// Query returns the current search query.
func (b *Browser) Query() string {
	return b.query
}

// SetTag selects tag, or clears the selection when tag is already selected.
func (b *Browser) SetTag(tag string) {
	if b.hasTag && b.tag == tag {
		b.ClearTag()
		return
	}
	b.tag = tag
	b.hasTag = true
}

// ClearTag removes the tag filter.
func (b *Browser) ClearTag() {
	b.tag = ""
	b.hasTag = false
}

// Tag returns the selected tag, if any.
func (b *Browser) Tag() (string, bool) {
	return b.tag, b.hasTag
}

// TagSelected reports whether tag is the selected tag.
func (b *Browser) TagSelected(tag string) bool {
	return b.hasTag && b.tag == tag
}

// ToggleShowAll flips the show-all flag. It is a no-op while every
// visible project already fits on the first page.
func (b *Browser) ToggleShowAll() {
	if !b.HasMore() {
		return
	}
	b.showAll = !b.showAll
}

// SetShowAll restores a saved show-all flag. Unlike ToggleShowAll it keeps
// the flag while the current filters fit on one page, so the choice
// survives later filter changes.
func (b *Browser) SetShowAll(on bool) {
	b.showAll = on
}

// ShowAll reports whether the full visible set is displayed.
func (b *Browser) ShowAll() bool {
	return b.showAll
}

// Visible returns the projects passing the query and tag filters.
func (b *Browser) Visible() []Project {
	var tag *string
	if b.hasTag {
		tag = &b.tag
	}
	return Filter(b.projects, b.query, tag)
}

// Displayed returns the visible projects, truncated to PageSize unless
// show-all is on.
func (b *Browser) Displayed() []Project {
	visible := b.Visible()
	if b.showAll || len(visible) <= PageSize {
		return visible
	}
	return visible[:PageSize]
}

// HasMore reports whether the visible set overflows the first page.
func (b *Browser) HasMore() bool {
	return len(b.Visible()) > PageSize
}

// Remaining is the number of visible projects hidden behind "Show More".
func (b *Browser) Remaining() int {
	if n := len(b.Visible()) - PageSize; n > 0 {
		return n
	}
	return 0
}
