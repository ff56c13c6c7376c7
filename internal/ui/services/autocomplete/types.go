package autocomplete

import "strconv"

// State holds the selection state of the suggestion list
type State struct {
	Query       string
	Results     []string
	ActiveIndex int // -1 when nothing is highlighted
	Visible     bool
}

// Direction represents a selection movement
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// SearchFunc maps a query to the ordered list of matching names
type SearchFunc func(query string) []string

// Renderer is the presentation side of the suggestion list
type Renderer interface {
	// Render shows results with the option at active highlighted (-1 for none)
	Render(results []string, active int)
	// Clear empties and hides the list
	Clear()
}

// Options configures a Controller
type Options struct {
	AutoSelect         bool // highlight the first result after every update
	InlineAutocomplete bool // complete the query in place with the highlighted result
	UpdateOnNavigate   bool // let up/down on an empty list run the search first
	OnShow             func()
	OnHide             func()
}

// Completion describes an inline completion: Text replaces the query and
// the runes in [SelectFrom, SelectTo) are the overtype suffix
type Completion struct {
	Text       string
	SelectFrom int
	SelectTo   int
}

// ResultID returns the element id of the option at index
func ResultID(index int) string {
	return "autocomplete-result-" + strconv.Itoa(index)
}
