package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Prompt         lipgloss.Style
	Overtype       lipgloss.Style
	Result         lipgloss.Style
	ResultSelected lipgloss.Style
	Scroll         lipgloss.Style
	DetailsBox     lipgloss.Style
	DetailsLabel   lipgloss.Style
	Heading        lipgloss.Style
	Component      lipgloss.Style
	Link           lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
	Main           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Overtype:       lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252")),
		Result:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ResultSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		Scroll:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		DetailsBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginTop(1),
		DetailsLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginTop(1),
		Component:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}
