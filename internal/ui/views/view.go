package views

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"tftlookup/internal/domain"
)

// StatusKind selects how the status line is styled
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	InputView    string // the text field as drawn by textinput
	Query        string
	OvertypeFrom int // rune offset of the inline completion suffix, -1 for none
	Focused      bool

	Results *ResultsList
	Details *domain.Item

	Loading       bool
	ItemCount     int
	StatusMessage string
	StatusKind    StatusKind
	HelpView      string
}

// Layout tells where interactive rows ended up on screen
type Layout struct {
	QueryRow       int
	FirstResultRow int
	ResultRows     int
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	details *DetailsRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		details: NewDetailsRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.renderQuery(state))

	if results := r.renderResults(state); results != "" {
		content.WriteString("\n")
		content.WriteString(results)
	}

	if state.Details != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.DetailsBox.Render(r.details.Render(*state.Details)))
	}

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	if state.HelpView != "" {
		content.WriteString("\n\n")
		content.WriteString(state.HelpView)
	}

	return r.styles.Main.Render(content.String())
}

// Layout computes the rows Render places the query and results on
func (r *Renderer) Layout(state ViewState) Layout {
	top := r.styles.Main.GetPaddingTop()
	queryRow := top + lipgloss.Height(r.renderTitle(state))

	layout := Layout{
		QueryRow:       queryRow,
		FirstResultRow: queryRow + 1,
	}
	if state.Results != nil && state.Results.Expanded() {
		_, visible := state.Results.Visible()
		layout.ResultRows = len(visible)
	}
	return layout
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("TFT Item Lookup")
	if !state.Loading {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	indicator := r.styles.Dim.Render(fmt.Sprintf("%s Loading items", spinner[frame]))
	return r.styles.Title.Render(lipgloss.JoinHorizontal(lipgloss.Top, "TFT Item Lookup", "  ", indicator))
}

func (r *Renderer) renderQuery(state ViewState) string {
	if state.OvertypeFrom < 0 || state.OvertypeFrom > utf8.RuneCountInString(state.Query) {
		return state.InputView
	}

	runes := []rune(state.Query)
	typed := string(runes[:state.OvertypeFrom])
	suffix := string(runes[state.OvertypeFrom:])
	return r.styles.Prompt.Render("> ") + typed + r.styles.Overtype.Render(suffix)
}

func (r *Renderer) renderResults(state ViewState) string {
	if state.Results == nil || !state.Results.Expanded() {
		return ""
	}

	start, visible := state.Results.Visible()
	lines := make([]string, 0, len(visible)+1)
	for _, opt := range visible {
		if opt.Selected {
			lines = append(lines, r.styles.ResultSelected.Render("▸ "+opt.Text))
		} else {
			lines = append(lines, r.styles.Result.Render("  "+opt.Text))
		}
	}

	if hidden := state.Results.Len() - len(visible); hidden > 0 {
		above := start
		below := hidden - above
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  (%d above, %d below)", above, below)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderStatus(state ViewState) string {
	msg := state.StatusMessage
	if msg == "" {
		if state.Loading {
			return ""
		}
		msg = fmt.Sprintf("%d items", state.ItemCount)
	}

	var style lipgloss.Style
	switch state.StatusKind {
	case StatusLoading:
		style = r.styles.StatusLoading
	case StatusSuccess:
		style = r.styles.StatusSuccess
	case StatusWarning:
		style = r.styles.StatusWarning
	case StatusError:
		style = r.styles.StatusError
	default:
		style = r.styles.Dim
	}
	return r.styles.Status.Render(style.Render(msg))
}
