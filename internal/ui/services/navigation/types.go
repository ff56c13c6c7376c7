package navigation

// State holds the scroll window over the suggestion list
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Total          int
}
