package views

import (
	"slices"

	"tftlookup/internal/ui/services/autocomplete"
	"tftlookup/internal/ui/services/navigation"
)

// ResultOption is one row of the suggestion list
type ResultOption struct {
	ID       string
	Text     string
	Selected bool
}

// ResultsList holds what the suggestion list currently shows. It is the
// autocomplete.Renderer the controller draws into
type ResultsList struct {
	options  []ResultOption
	active   int
	expanded bool
	viewport *navigation.Service
}

// NewResultsList creates a list showing at most maxVisible rows at once
func NewResultsList(maxVisible int) *ResultsList {
	return &ResultsList{
		active:   -1,
		viewport: navigation.NewService(maxVisible),
	}
}

// Render implements autocomplete.Renderer
func (l *ResultsList) Render(results []string, active int) {
	same := l.expanded && len(results) == len(l.options) && slices.EqualFunc(results, l.options, func(r string, o ResultOption) bool {
		return r == o.Text
	})

	options := make([]ResultOption, len(results))
	for i, r := range results {
		options[i] = ResultOption{
			ID:       autocomplete.ResultID(i),
			Text:     r,
			Selected: i == active,
		}
	}
	l.options = options
	l.active = active
	l.expanded = len(results) > 0

	if same {
		l.viewport.MoveToIndex(active)
	} else {
		l.viewport.Reset(len(results), active)
	}
}

// Clear implements autocomplete.Renderer
func (l *ResultsList) Clear() {
	l.options = nil
	l.active = -1
	l.expanded = false
	l.viewport.Reset(0, -1)
}

// Expanded reports whether the list is shown
func (l *ResultsList) Expanded() bool {
	return l.expanded
}

// ActiveDescendant returns the id of the selected option or ""
func (l *ResultsList) ActiveDescendant() string {
	if l.active < 0 || l.active >= len(l.options) {
		return ""
	}
	return l.options[l.active].ID
}

func (l *ResultsList) Len() int {
	return len(l.options)
}

// Options returns every option, visible or not
func (l *ResultsList) Options() []ResultOption {
	return append([]ResultOption(nil), l.options...)
}

// Visible returns the index of the first on-screen option and the options on screen
func (l *ResultsList) Visible() (int, []ResultOption) {
	start, end := l.viewport.Window()
	if start >= end {
		return start, nil
	}
	return start, l.options[start:end]
}

// IndexAtRow maps a row relative to the first on-screen option to an
// option index, or -1
func (l *ResultsList) IndexAtRow(row int) int {
	start, visible := l.Visible()
	if row < 0 || row >= len(visible) {
		return -1
	}
	return start + row
}

// SetMaxVisible changes how many rows are shown at once
func (l *ResultsList) SetMaxVisible(n int) {
	l.viewport.SetViewportHeight(n)
}
