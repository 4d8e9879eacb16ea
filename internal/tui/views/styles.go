package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Anchor       lipgloss.Style
	AnchorActive lipgloss.Style
	AnchorOpen   lipgloss.Style
	Menu         lipgloss.Style
	MenuItem     lipgloss.Style
	MenuFocused  lipgloss.Style
	Filter       lipgloss.Style
	Highlight    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Anchor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		AnchorActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true).
			Padding(0, 1),
		AnchorOpen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Background(lipgloss.Color("238")).
			Bold(true).
			Padding(0, 1),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		MenuItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}
