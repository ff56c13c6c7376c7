package autocomplete

import (
	"strings"
	"unicode/utf8"

	"tftlookup/internal/domain"
	"tftlookup/internal/ui/services/events"
)

// Controller owns the query, the result list and the highlighted option.
// It never touches the terminal; rendering goes through Renderer
type Controller struct {
	state    *State
	search   SearchFunc
	renderer Renderer
	bus      events.Publisher
	opts     Options
}

// NewController creates a controller. renderer and bus may be nil
func NewController(search SearchFunc, renderer Renderer, bus events.Publisher, opts Options) *Controller {
	if bus == nil {
		bus = events.NullBus{}
	}
	return &Controller{
		state: &State{
			ActiveIndex: -1,
		},
		search:   search,
		renderer: renderer,
		bus:      bus,
		opts:     opts,
	}
}

// UpdateResults runs the search for query and shows what it found.
// A panicking search function propagates to the caller
func (c *Controller) UpdateResults(query string) []string {
	c.state.Query = query
	results := c.search(query)

	c.HideResults()
	if len(results) == 0 {
		return nil
	}

	c.state.Results = append([]string(nil), results...)
	c.state.Visible = true
	if c.opts.AutoSelect {
		c.state.ActiveIndex = 0
	}

	c.render()
	c.bus.Publish(domain.ResultsShownEvent{Query: query, Count: len(results)})
	if c.opts.OnShow != nil {
		c.opts.OnShow()
	}

	return c.Results()
}

// MoveSelection moves the highlight one step, wrapping at both ends, and
// returns the new active index
func (c *Controller) MoveSelection(direction Direction) int {
	// the move starts from the highlight held before any refresh, so a
	// refresh that auto-selects does not skip the first result
	active := c.state.ActiveIndex
	if len(c.state.Results) == 0 {
		if !c.opts.UpdateOnNavigate {
			return c.state.ActiveIndex
		}
		c.UpdateResults(c.state.Query)
		if len(c.state.Results) == 0 {
			return c.state.ActiveIndex
		}
	}

	n := len(c.state.Results)

	switch direction {
	case DirectionUp:
		if active <= 0 {
			active = n - 1
		} else {
			active--
		}
	case DirectionDown:
		if active == -1 || active >= n-1 {
			active = 0
		} else {
			active++
		}
	default:
		return c.state.ActiveIndex
	}

	c.state.ActiveIndex = active
	if c.opts.InlineAutocomplete {
		c.state.Query = c.state.Results[active]
	}
	c.render()

	return active
}

// CommitSelection copies the highlighted result into the query and hides
// the list. It reports whether anything was highlighted
func (c *Controller) CommitSelection() bool {
	return c.Select(c.state.ActiveIndex)
}

// Select commits the result at index, as a click on an option does
func (c *Controller) Select(index int) bool {
	if index < 0 || index >= len(c.state.Results) {
		return false
	}

	c.state.Query = c.state.Results[index]
	c.HideResults()
	c.bus.Publish(domain.SelectionCommittedEvent{Query: c.state.Query})
	return true
}

// HideResults empties the list and clears the highlight
func (c *Controller) HideResults() {
	wasVisible := c.state.Visible

	c.state.Results = nil
	c.state.ActiveIndex = -1
	c.state.Visible = false

	if c.renderer != nil {
		c.renderer.Clear()
	}
	if !wasVisible {
		return
	}

	c.bus.Publish(domain.ResultsHiddenEvent{})
	if c.opts.OnHide != nil {
		c.opts.OnHide()
	}
}

// Escape hides the list and clears the query
func (c *Controller) Escape() {
	c.HideResults()
	c.state.Query = ""
}

// Tab commits the current selection, if any, then hides the list
func (c *Controller) Tab() {
	c.CommitSelection()
	c.HideResults()
}

// Focus refreshes the results for the current query
func (c *Controller) Focus() []string {
	return c.UpdateResults(c.state.Query)
}

// InlineAutocomplete completes the query in place with the highlighted
// result when that result starts with the query exactly (case-sensitive).
// The appended suffix is reported so the caller can mark it for overtype
func (c *Controller) InlineAutocomplete() (Completion, bool) {
	if !c.opts.InlineAutocomplete || c.state.ActiveIndex < 0 || c.state.Query == "" {
		return Completion{}, false
	}

	text := c.state.Results[c.state.ActiveIndex]
	query := c.state.Query
	if text == query || !strings.HasPrefix(text, query) {
		return Completion{}, false
	}

	c.state.Query = text
	return Completion{
		Text:       text,
		SelectFrom: utf8.RuneCountInString(query),
		SelectTo:   utf8.RuneCountInString(text),
	}, true
}

// SetQuery replaces the query without searching
func (c *Controller) SetQuery(query string) {
	c.state.Query = query
}

func (c *Controller) Query() string {
	return c.state.Query
}

// Results returns a copy of the current result list
func (c *Controller) Results() []string {
	if len(c.state.Results) == 0 {
		return nil
	}
	return append([]string(nil), c.state.Results...)
}

func (c *Controller) ActiveIndex() int {
	return c.state.ActiveIndex
}

func (c *Controller) Visible() bool {
	return c.state.Visible
}

// Expanded mirrors the list visibility as an accessibility flag
func (c *Controller) Expanded() bool {
	return c.state.Visible
}

// ActiveDescendant returns the id of the highlighted option or ""
func (c *Controller) ActiveDescendant() string {
	if c.state.ActiveIndex < 0 {
		return ""
	}
	return ResultID(c.state.ActiveIndex)
}

// Options returns the controller configuration
func (c *Controller) Options() Options {
	return c.opts
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.Results(), c.state.ActiveIndex)
	}
}
