// Package page models the element contract of the rendered document: a set
// of named regions that loaders write into and templates render in place.
// A loader whose region is missing from the page does nothing.
package page

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"
)

// Element IDs
const (
	LeaderboardList = "leaderboard-list"
	BtnWeekly       = "btn-weekly"
	BtnMonthly      = "btn-monthly"
	BtnAllTime      = "btn-alltime"
	StatsTitle      = "user-stats-title"
	StatsStatus     = "user-stats-status"
	StatsList       = "user-stats-list"
	TotalScore      = "user-total-score"
)

// Region is one addressable element. Writes replace the whole content;
// the last write wins.
type Region struct {
	id  string
	tag string

	mu      sync.Mutex
	state   string
	content templ.Component
}

// NewRegion creates an empty region rendered as <tag id="id">
func NewRegion(id, tag string) *Region {
	return &Region{id: id, tag: tag}
}

// ID returns the element id
func (r *Region) ID() string {
	return r.id
}

// Set replaces the region's content and state
func (r *Region) Set(state string, content templ.Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.content = content
}

// State returns the state recorded by the last Set
func (r *Region) State() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Render writes the element and its current content
func (r *Region) Render(ctx context.Context, w io.Writer) error {
	r.mu.Lock()
	state, content := r.state, r.content
	r.mu.Unlock()

	open := "<" + r.tag + ` id="` + templ.EscapeString(r.id) + `"`
	if state != "" {
		open += ` data-state="` + templ.EscapeString(state) + `"`
	}
	if _, err := io.WriteString(w, open+">"); err != nil {
		return err
	}
	if content != nil {
		if err := content.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+r.tag+">")
	return err
}

// Page is the set of regions present in one rendered document
type Page struct {
	regions map[string]*Region
}

// New creates a page holding the given regions
func New(regions ...*Region) *Page {
	p := &Page{regions: make(map[string]*Region, len(regions))}
	for _, r := range regions {
		p.regions[r.id] = r
	}
	return p
}

// Leaderboard returns a page with only the leaderboard list
func Leaderboard() *Page {
	return New(NewRegion(LeaderboardList, "ol"))
}

// Stats returns a page with the four stats regions
func Stats() *Page {
	return New(
		NewRegion(StatsTitle, "h2"),
		NewRegion(StatsStatus, "p"),
		NewRegion(StatsList, "ul"),
		NewRegion(TotalScore, "div"),
	)
}

// Full returns a page with every region
func Full() *Page {
	p := Stats()
	p.regions[LeaderboardList] = NewRegion(LeaderboardList, "ol")
	return p
}

// Get returns the region with the given id, or nil if the page lacks it
func (p *Page) Get(id string) *Region {
	if p == nil {
		return nil
	}
	return p.regions[id]
}

// Slot renders the region with the given id, or nothing if the page lacks it
func (p *Page) Slot(id string) templ.Component {
	if r := p.Get(id); r != nil {
		return r
	}
	return templ.NopComponent
}
