package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tftlookup/internal/ui/input/types"
)

type fakeContext struct {
	hasResults bool
}

func (c fakeContext) HasResults() bool { return c.hasResults }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, h *Handler, s string) []types.Action {
	t.Helper()
	var all []types.Action
	for _, r := range s {
		actions, _ := h.HandleKey(runes(string(r)), fakeContext{})
		all = append(all, actions...)
	}
	return all
}

func TestTypingUpdatesText(t *testing.T) {
	h := New(DefaultKeyMap())
	require.Equal(t, types.ModeQuery, h.CurrentMode())

	actions := typeText(t, h, "Sw")

	require.Len(t, actions, 2)
	assert.Equal(t, types.UpdateTextAction{Text: "S"}, actions[0])
	assert.Equal(t, types.UpdateTextAction{Text: "Sw"}, actions[1])
	assert.Equal(t, "Sw", h.Value())
}

func TestBackspaceIsDeleting(t *testing.T) {
	h := New(DefaultKeyMap())
	typeText(t, h, "abc")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, fakeContext{})

	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "ab", Deleting: true}, actions[0])
}

func TestNavigationKeysAreConsumed(t *testing.T) {
	h := New(DefaultKeyMap())
	typeText(t, h, "s")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, fakeContext{hasResults: true})
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, fakeContext{hasResults: true})
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "up"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, []types.Action{types.EscapeAction{}}, actions)

	assert.Equal(t, "s", h.Value(), "consumed keys never reach the field")
}

func TestEnterCommitsThenSubmits(t *testing.T) {
	h := New(DefaultKeyMap())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{hasResults: true})
	assert.Equal(t, []types.Action{types.CommitAction{}, types.SubmitAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.SubmitAction{}}, actions)
}

func TestTabMovesToBrowseMode(t *testing.T) {
	h := New(DefaultKeyMap())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, fakeContext{hasResults: true})

	assert.Equal(t, []types.Action{types.TabAction{}, types.BlurAction{}}, actions)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())

	// typing in browse mode does not edit the query
	actions, _ = h.HandleKey(runes("x"), fakeContext{})
	assert.Empty(t, actions)
	assert.Equal(t, "", h.Value())
}

func TestBrowseModeKeys(t *testing.T) {
	h := New(DefaultKeyMap())
	h.Blur(fakeContext{})
	require.Equal(t, types.ModeBrowse, h.CurrentMode())

	actions, _ := h.HandleKey(runes("?"), fakeContext{})
	assert.Equal(t, []types.Action{types.ShowHelpAction{}}, actions)

	actions, _ = h.HandleKey(runes("q"), fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	actions, cmd := h.HandleKey(runes("/"), fakeContext{})
	assert.Equal(t, []types.Action{types.FocusAction{}}, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeQuery, h.CurrentMode())
}

func TestQuestionMarkIsTextInQueryMode(t *testing.T) {
	h := New(DefaultKeyMap())

	actions, _ := h.HandleKey(runes("?"), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "?"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyF1}, fakeContext{})
	assert.Equal(t, []types.Action{types.ShowHelpAction{}}, actions)
}

func TestCtrlCQuitsEverywhere(t *testing.T) {
	h := New(DefaultKeyMap())
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	h.Blur(fakeContext{})
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestOvertypeReplacedByTyping(t *testing.T) {
	h := New(DefaultKeyMap())
	typeText(t, h, "Sw")
	h.SetOvertype("Sword", 2)
	require.Equal(t, 2, h.OvertypeFrom())

	actions, _ := h.HandleKey(runes("e"), fakeContext{})

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Swe"}}, actions)
	assert.Equal(t, -1, h.OvertypeFrom())
}

func TestOvertypeRemovedByBackspace(t *testing.T) {
	h := New(DefaultKeyMap())
	h.SetOvertype("Sword", 2)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, fakeContext{})

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Sw", Deleting: true}}, actions)
	assert.Equal(t, "Sw", h.Value())
	assert.Equal(t, -1, h.OvertypeFrom())
}

func TestOvertypeKeptOnEnter(t *testing.T) {
	h := New(DefaultKeyMap())
	h.SetOvertype("Sword", 2)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{hasResults: true})

	assert.Equal(t, []types.Action{types.CommitAction{}, types.SubmitAction{}}, actions)
	assert.Equal(t, "Sword", h.Value())
	assert.Equal(t, -1, h.OvertypeFrom())
}

func TestSetOvertypeIgnoresEmptySuffix(t *testing.T) {
	h := New(DefaultKeyMap())
	h.SetOvertype("Sword", 5)
	assert.Equal(t, -1, h.OvertypeFrom())
}

func TestHelpKeysFollowMode(t *testing.T) {
	h := New(DefaultKeyMap())
	assert.Len(t, h.HelpKeys().ShortHelp(), 6)

	h.Blur(fakeContext{})
	assert.Len(t, h.HelpKeys().ShortHelp(), 3)
}
