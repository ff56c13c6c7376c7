package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tftlookup/internal/ui/input/types"
)

// Bindings are the keys the modes react to
type Bindings struct {
	Up, Down, Submit, Escape, Tab, Focus, Help, Quit, Force key.Binding
}

// QueryMode is active while the query field has focus. Arrow, Escape and
// Enter keys are always consumed so they never move the text cursor
type QueryMode struct {
	keys      Bindings
	textInput *textinput.Model
}

func NewQueryMode(keys Bindings, ti *textinput.Model) *QueryMode {
	return &QueryMode{keys: keys, textInput: ti}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return []types.Action{types.FocusAction{}}
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return []types.Action{types.BlurAction{}}
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Escape):
		return []types.Action{types.EscapeAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Submit):
		if ctx.HasResults() {
			return []types.Action{types.CommitAction{}, types.SubmitAction{}}, true
		}
		return []types.Action{types.SubmitAction{}}, true
	case key.Matches(msg, m.keys.Tab):
		return []types.Action{
			types.TabAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	case msg.Type == tea.KeyF1:
		// "?" is a valid query character, so only F1 opens help here
		return []types.Action{types.ShowHelpAction{}}, true
	default:
		// Let the handler feed the key to the text field
		return nil, false
	}
}
