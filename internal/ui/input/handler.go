package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tftlookup/internal/ui/input/modes"
	"tftlookup/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the query text field
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        KeyMap

	// rune offset where the inline completion suffix starts, -1 for none
	overtypeFrom int
}

// New creates a handler starting in query mode with a focused field
func New(keys KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type an item name"
	ti.Focus()

	h := &Handler{
		currentMode:  types.ModeQuery,
		textInput:    &ti,
		modes:        make(map[types.Mode]types.ModeHandler),
		keys:         keys,
		overtypeFrom: -1,
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(keys.Bindings, h.textInput)
	h.modes[types.ModeBrowse] = modes.NewBrowseMode(keys.Bindings)

	return h
}

// HandleKey processes msg in the current mode. Keys the query mode does not
// consume are typed into the field and reported as UpdateTextAction
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	if h.currentMode == types.ModeQuery && h.overtypeFrom >= 0 {
		if key.Matches(msg, h.keys.Delete) {
			// Deleting with a pending completion removes just the completion
			h.truncateOvertype()
			return []types.Action{types.UpdateTextAction{Text: h.textInput.Value(), Deleting: true}}, nil
		}
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			h.truncateOvertype()
		}
		h.overtypeFrom = -1
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if changeMode.Mode == types.ModeQuery {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	if !consumed && h.currentMode == types.ModeQuery {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{
			Text:     h.textInput.Value(),
			Deleting: key.Matches(msg, h.keys.Delete),
		})
	}

	return allActions, cmd
}

// Focus moves focus to the query field
func (h *Handler) Focus(ctx types.Context) []types.Action {
	if h.currentMode == types.ModeQuery {
		return []types.Action{types.FocusAction{}}
	}
	return h.switchMode(types.ModeQuery, ctx)
}

// Blur moves focus away from the query field
func (h *Handler) Blur(ctx types.Context) []types.Action {
	if h.currentMode == types.ModeBrowse {
		return nil
	}
	return h.switchMode(types.ModeBrowse, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.overtypeFrom = -1
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// SetValue replaces the field text and puts the cursor at the end
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
	h.overtypeFrom = -1
}

// SetOvertype marks the runes from offset on as a pending completion that
// the next typed character replaces
func (h *Handler) SetOvertype(text string, from int) {
	h.SetValue(text)
	if from >= 0 && from < len([]rune(text)) {
		h.overtypeFrom = from
	}
}

// OvertypeFrom returns the start of the pending completion or -1
func (h *Handler) OvertypeFrom() int {
	return h.overtypeFrom
}

func (h *Handler) truncateOvertype() {
	runes := []rune(h.textInput.Value())
	if h.overtypeFrom <= len(runes) {
		h.textInput.SetValue(string(runes[:h.overtypeFrom]))
		h.textInput.CursorEnd()
	}
	h.overtypeFrom = -1
}

// Update handles non-keyboard messages for the text field
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) Value() string {
	return h.textInput.Value()
}

// View renders the query field
func (h *Handler) View() string {
	return h.textInput.View()
}

// HelpKeys returns the bindings for the current mode
func (h *Handler) HelpKeys() help.KeyMap {
	return h.keys.HelpFor(h.currentMode)
}

func (h *Handler) Keys() KeyMap {
	return h.keys
}
