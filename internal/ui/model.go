package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"tftlookup/internal/catalog"
	"tftlookup/internal/config"
	"tftlookup/internal/domain"
	"tftlookup/internal/eventbus"
	"tftlookup/internal/logger"
	"tftlookup/internal/ui/input"
	inputtypes "tftlookup/internal/ui/input/types"
	"tftlookup/internal/ui/services/autocomplete"
	"tftlookup/internal/ui/services/events"
	"tftlookup/internal/ui/views"
)

// rows taken by everything but the results list: padding, title, query,
// status and key help
const reservedLines = 9

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *catalog.Store
	log    logrus.FieldLogger

	// UI-specific state
	width         int
	height        int
	help          help.Model
	details       *domain.Item
	loading       bool
	statusMessage string
	statusKind    views.StatusKind
	statusSeq     int
	inPagerMode   bool

	controller   *autocomplete.Controller
	results      *views.ResultsList
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The store may still be empty; the model
// shows a loading indicator until an ItemsLoaded or ItemsLoadFailed event
// arrives as EventMsg
func NewModel(cfg *config.Config, store *catalog.Store, bus eventbus.EventBus, log logrus.FieldLogger) *Model {
	if log == nil {
		log = logger.Discard()
	}

	keys := input.DefaultKeyMap()
	results := views.NewResultsList(cfg.UISettings.MaxVisibleResults)

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		log:          log.WithField("component", "ui"),
		help:         help.New(),
		loading:      true,
		results:      results,
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(nil),
	}

	var publisher events.Publisher
	if bus != nil {
		publisher = bus
	}

	m.controller = autocomplete.NewController(catalog.PrefixSearch(store), results, publisher, autocomplete.Options{
		AutoSelect:         cfg.UISettings.AutoSelect,
		InlineAutocomplete: cfg.UISettings.InlineAutocomplete,
		UpdateOnNavigate:   cfg.UISettings.InlineAutocomplete,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), textinput.Blink)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateMaxVisible()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.processActions(actions)...)

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// HasResults implements inputtypes.Context
func (m *Model) HasResults() bool {
	return m.controller.Visible()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		InputView:     m.inputHandler.View(),
		Query:         m.inputHandler.Value(),
		OvertypeFrom:  m.inputHandler.OvertypeFrom(),
		Focused:       m.inputHandler.CurrentMode() == inputtypes.ModeQuery,
		Results:       m.results,
		Details:       m.details,
		Loading:       m.loading,
		ItemCount:     m.store.Len(),
		StatusMessage: m.statusMessage,
		StatusKind:    m.statusKind,
		HelpView:      m.help.View(m.inputHandler.HelpKeys()),
	}
}

func (m *Model) processActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debugf("processAction: %T", action)

	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.controller.UpdateResults(a.Text)
		if a.Deleting {
			return nil
		}
		if completion, ok := m.controller.InlineAutocomplete(); ok {
			m.inputHandler.SetOvertype(completion.Text, completion.SelectFrom)
		}

	case inputtypes.NavigateAction:
		m.controller.MoveSelection(autocomplete.Direction(a.Direction))
		if m.controller.Options().InlineAutocomplete {
			m.inputHandler.SetValue(m.controller.Query())
		}

	case inputtypes.CommitAction:
		if m.controller.CommitSelection() {
			m.inputHandler.SetValue(m.controller.Query())
		}

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.EscapeAction:
		m.controller.Escape()
		m.inputHandler.SetValue("")

	case inputtypes.TabAction:
		m.controller.Tab()
		m.inputHandler.SetValue(m.controller.Query())

	case inputtypes.FocusAction:
		m.controller.SetQuery(m.inputHandler.Value())
		m.controller.Focus()

	case inputtypes.BlurAction:
		// results stay until hidden explicitly, as with a click elsewhere

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			m.log.Warn("help pager unavailable: program not set")
			return nil
		}
		return m.showHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// submit looks up the item named by the field and shows its details
func (m *Model) submit() tea.Cmd {
	query := m.inputHandler.Value()
	if query == "" {
		return nil
	}

	item, err := catalog.Lookup(m.store, query)
	found := err == nil
	if m.bus != nil {
		m.bus.Publish(eventbus.ItemLookedUpEvent{Query: query, Found: found})
	}

	if errors.Is(err, catalog.ErrNotFound) {
		m.log.WithField("query", query).Info("no item found")
		return m.setStatus(fmt.Sprintf("No item named %q", query), views.StatusWarning)
	}
	if err != nil {
		m.log.WithError(err).Error("lookup failed")
		return m.setStatus("Lookup failed", views.StatusError)
	}

	m.details = &item
	m.statusSeq++
	m.statusMessage = ""
	return nil
}

// handleMouse maps clicks to the query line, a result row or elsewhere
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	layout := m.renderer.Layout(m.viewState())
	row := msg.Y - layout.FirstResultRow

	switch {
	case msg.Y == layout.QueryRow:
		return m.focus()

	case row >= 0 && row < layout.ResultRows:
		index := m.results.IndexAtRow(row)
		if m.controller.Select(index) {
			m.inputHandler.SetValue(m.controller.Query())
		}
		return nil

	default:
		m.controller.HideResults()
		m.processActions(m.inputHandler.Blur(m))
		return nil
	}
}

func (m *Model) focus() tea.Cmd {
	return tea.Batch(m.processActions(m.inputHandler.Focus(m))...)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case tickMsg:
		// Only the loading spinner animates
		if m.inPagerMode || !m.loading {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.log.WithError(msg.err).Warn("help pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// a timer from an older status must not clear a newer one
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ItemsLoadedEvent:
		m.loading = false
		// Results for a query typed while loading were empty
		if query := m.inputHandler.Value(); query != "" && m.inputHandler.CurrentMode() == inputtypes.ModeQuery {
			m.controller.UpdateResults(query)
		}
		return m.setStatus(fmt.Sprintf("Loaded %d items", e.Count), views.StatusSuccess)

	case eventbus.ItemsLoadFailedEvent:
		m.loading = false
		m.statusSeq++
		m.statusMessage = "Could not load items, see the log for details"
		m.statusKind = views.StatusError
	}
	return nil
}

// setStatus shows msg for a few seconds
func (m *Model) setStatus(msg string, kind views.StatusKind) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.statusMessage = msg
	m.statusKind = kind
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) updateMaxVisible() {
	rows := m.config.UISettings.MaxVisibleResults
	if avail := m.height - reservedLines; avail < rows {
		rows = avail
	}
	if rows < 1 {
		rows = 1
	}
	m.results.SetMaxVisible(rows)
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager(content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(content)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
