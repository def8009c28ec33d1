package portfolio

import (
	"encoding/json"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by catalog lookups for unknown ids.
var ErrNotFound = errors.New("not found")

// Profile is the "about me" content of the site.
type Profile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	About    string `json:"about"`
	GitHub   string `json:"github,omitempty"`
}

// Catalog is the immutable content of the site.
type Catalog struct {
	profile    Profile
	positions  []Position
	projects   []Project
	filterTags []string
}

// catalogFile is the on-disk JSON shape of a Catalog.
type catalogFile struct {
	Profile    Profile    `json:"profile"`
	Positions  []Position `json:"positions"`
	Projects   []Project  `json:"projects"`
	FilterTags []string   `json:"filter_tags"`
}

// NewCatalog validates and freezes the given content.
func NewCatalog(profile Profile, positions []Position, projects []Project, filterTags []string) (*Catalog, error) {
	c := &Catalog{
		profile:    profile,
		positions:  slices.Clone(positions),
		projects:   slices.Clone(projects),
		filterTags: slices.Clone(filterTags),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCatalog reads a catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read content file: %s", path)
	}

	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to parse content JSON: %s", path)
	}

	c, err := NewCatalog(f.Profile, f.Positions, f.Projects, f.FilterTags)
	if err != nil {
		return nil, errors.Wrap(err, "content validation failed")
	}
	return c, nil
}

// MarshalJSON writes the catalog in the format LoadCatalog reads.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(catalogFile{
		Profile:    c.profile,
		Positions:  c.positions,
		Projects:   c.projects,
		FilterTags: c.filterTags,
	})
}

// Validate checks ids are present and unique and links are absolute.
func (c *Catalog) Validate() error {
	if c.profile.Name == "" {
		return errors.New("profile name is required")
	}

	seenPositions := make(map[int]bool, len(c.positions))
	for i, p := range c.positions {
		if seenPositions[p.ID] {
			return errors.Errorf("position at index %d has duplicate id %d", i, p.ID)
		}
		seenPositions[p.ID] = true
		if p.Title == "" {
			return errors.Errorf("position %d missing title", p.ID)
		}
		if !strings.HasPrefix(string(p.Color), "bg-") {
			return errors.Errorf("position %d has invalid color %q", p.ID, p.Color)
		}
		if !p.Icon.valid() {
			return errors.Errorf("position %d has unknown icon %q", p.ID, p.Icon)
		}
	}

	seenProjects := make(map[string]bool, len(c.projects))
	for i, p := range c.projects {
		if p.ID == "" {
			return errors.Errorf("project at index %d missing id", i)
		}
		if seenProjects[p.ID] {
			return errors.Errorf("project at index %d has duplicate id %q", i, p.ID)
		}
		seenProjects[p.ID] = true
		if p.Name == "" {
			return errors.Errorf("project %s missing name", p.ID)
		}
		u, err := url.Parse(p.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Errorf("project %s has invalid url %q", p.ID, p.URL)
		}
	}

	return nil
}

// Profile returns the site's profile.
func (c *Catalog) Profile() Profile {
	return c.profile
}

// Positions returns the timeline entries in display order.
func (c *Catalog) Positions() []Position {
	return slices.Clone(c.positions)
}

// Projects returns the showcase entries in display order.
func (c *Catalog) Projects() []Project {
	return slices.Clone(c.projects)
}

// FilterTags returns the quick-filter tags, at most eight.
func (c *Catalog) FilterTags() []string {
	if len(c.filterTags) > maxFilterTags {
		return slices.Clone(c.filterTags[:maxFilterTags])
	}
	return slices.Clone(c.filterTags)
}

// Project looks up a project by id.
func (c *Catalog) Project(id string) (Project, error) {
	for _, p := range c.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, errors.Wrapf(ErrNotFound, "project %q", id)
}

// Position looks up a position by id.
func (c *Catalog) Position(id int) (Position, error) {
	for _, p := range c.positions {
		if p.ID == id {
			return p, nil
		}
	}
	return Position{}, errors.Wrapf(ErrNotFound, "position %d", id)
}

// NewSelector returns a selector over the catalog's positions.
func (c *Catalog) NewSelector() *Selector {
	return NewSelector(c.positions)
}

// NewBrowser returns a browser over the catalog's projects.
func (c *Catalog) NewBrowser() *Browser {
	return NewBrowser(c.projects)
}
