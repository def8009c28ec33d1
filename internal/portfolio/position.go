package portfolio

import "slices"

// Color is the timeline accent class for a position.
type Color string

const (
	ColorBlue   Color = "bg-blue-500"
	ColorGreen  Color = "bg-green-600"
	ColorOrange Color = "bg-orange-500"
)

// Icon names the glyph drawn on a timeline entry.
type Icon string

const (
	IconCode  Icon = "code"
	IconUsers Icon = "users"
	IconAward Icon = "award"
)

func (i Icon) valid() bool {
	switch i {
	case IconCode, IconUsers, IconAward:
		return true
	}
	return false
}

// Position is one role or activity on the responsibilities timeline.
type Position struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Organization     string   `json:"organization"`
	Period           string   `json:"period"`
	Color            Color    `json:"color"`
	Icon             Icon     `json:"icon"`
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`
}

// Selector holds the single active Position of the timeline.
//
// Whether anything is active is tracked separately from the id, so a
// position with id 0 is a normal selectable entry.
type Selector struct {
	positions []Position
	active    int
	hasActive bool
	seen      bool
}

// NewSelector returns a selector over positions with nothing active.
func NewSelector(positions []Position) *Selector {
	return &Selector{positions: slices.Clone(positions)}
}

// Positions returns the timeline entries in display order.
func (s *Selector) Positions() []Position {
	return slices.Clone(s.positions)
}

// Select makes id the active position. It reports false and leaves the
// selection untouched when id is not on the timeline.
func (s *Selector) Select(id int) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.active = id
	s.hasActive = true
	return true
}

// ActivateOnVisible records that the section has entered the viewport.
// The first call activates the first entry when nothing is selected yet;
// later calls do nothing.
func (s *Selector) ActivateOnVisible() {
	if s.seen {
		return
	}
	s.seen = true
	if !s.hasActive && len(s.positions) > 0 {
		s.active = s.positions[0].ID
		s.hasActive = true
	}
}

// Visible reports whether ActivateOnVisible has fired.
func (s *Selector) Visible() bool {
	return s.seen
}

// ActiveID returns the active id, if any.
func (s *Selector) ActiveID() (int, bool) {
	return s.active, s.hasActive
}

// Active returns the active position, if any.
func (s *Selector) Active() (Position, bool) {
	if !s.hasActive {
		return Position{}, false
	}
	return s.positions[s.indexOf(s.active)], true
}

// IsActive reports whether id is the active position.
func (s *Selector) IsActive(id int) bool {
	return s.hasActive && s.active == id
}

// CurrentIndex is the timeline index of the active entry, 0 when unset.
func (s *Selector) CurrentIndex() int {
	if !s.hasActive {
		return 0
	}
	return s.indexOf(s.active)
}

// ScrollTarget is the entry narrow viewports should scroll into view
// after the selection changes.
func (s *Selector) ScrollTarget() (int, bool) {
	return s.ActiveID()
}

func (s *Selector) indexOf(id int) int {
	return slices.IndexFunc(s.positions, func(p Position) bool { return p.ID == id })
}
