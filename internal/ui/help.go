package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"tftlookup/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys input.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(22)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(keys []string, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(strings.Join(keys, ", ")), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("TFT Item Lookup Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(row([]string{"type"}, "Show items starting with the text"))
	help.WriteString(row(r.keys.Up.Keys(), "Highlight the previous result"))
	help.WriteString(row(r.keys.Down.Keys(), "Highlight the next result"))
	help.WriteString(row(r.keys.Submit.Keys(), "Take the highlighted result and show the item"))
	help.WriteString(row(r.keys.Tab.Keys(), "Take the highlighted result and leave the field"))
	help.WriteString(row(r.keys.Escape.Keys(), "Clear the field and hide results"))
	help.WriteString(row([]string{"f1"}, "Show this help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Outside the field"))
	help.WriteString("\n")
	help.WriteString(row(r.keys.Focus.Keys(), "Focus the search field"))
	help.WriteString(row(r.keys.Help.Keys(), "Show this help"))
	help.WriteString(row(r.keys.Quit.Keys(), "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(row([]string{"click result"}, "Take that result"))
	help.WriteString(row([]string{"click field"}, "Focus the search field"))
	help.WriteString(row([]string{"click elsewhere"}, "Hide results"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Press q to close this help"))

	return help.String()
}

// HelpOps shows help in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
