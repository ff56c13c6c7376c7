package navigation

// Service keeps the highlighted suggestion inside a fixed-height window
type Service struct {
	state *State
}

// NewService creates a viewport showing at most height rows
func NewService(height int) *Service {
	if height < 1 {
		height = 1
	}
	return &Service{
		state: &State{
			Cursor:         -1,
			ViewportHeight: height,
		},
	}
}

// Reset scrolls back to the top of a list of total rows with cursor highlighted
func (s *Service) Reset(total, cursor int) {
	s.state.Total = total
	s.state.ViewportOffset = 0
	s.MoveToIndex(cursor)
}

// MoveToIndex moves the cursor and scrolls just enough to show it.
// A negative index clears the cursor without scrolling
func (s *Service) MoveToIndex(index int) {
	if index < 0 || s.state.Total == 0 {
		s.state.Cursor = -1
		s.clampOffset()
		return
	}
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// SetViewportHeight changes the window size
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Window returns the half-open range of rows currently on screen
func (s *Service) Window() (start, end int) {
	start = s.state.ViewportOffset
	end = start + s.state.ViewportHeight
	if end > s.state.Total {
		end = s.state.Total
	}
	return start, end
}

func (s *Service) GetCursor() int {
	return s.state.Cursor
}

func (s *Service) clampIndex(index int) int {
	if index >= s.state.Total {
		return s.state.Total - 1
	}
	return index
}

func (s *Service) clampOffset() {
	maxOffset := s.state.Total - s.state.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.state.ViewportOffset > maxOffset {
		s.state.ViewportOffset = maxOffset
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
}

func (s *Service) ensureVisible() {
	if s.state.Cursor >= 0 {
		if s.state.Cursor < s.state.ViewportOffset {
			s.state.ViewportOffset = s.state.Cursor
		} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
			s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
		}
	}
	s.clampOffset()
}
