package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// renderHelpContent generates help content with colors for the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Menu Surface Demo Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Anchors"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Tab/Shift+Tab"), descStyle.Render("Cycle anchor buttons")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("Enter, o"), descStyle.Render("Open the menu at the anchor")))
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("Click"), descStyle.Render("Toggle the menu on an anchor")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("While Open"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move item focus (wraps)")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Tab/Shift+Tab"), descStyle.Render("Wrap focus at first/last item")))
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("Enter"), descStyle.Render("Select the focused item")))
	help.WriteString(fmt.Sprintf("  %s                  %s\n", keyStyle.Render("/"), descStyle.Render("Filter menu items")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("Esc"), descStyle.Render("Close the menu")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Click outside"), descStyle.Render("Dismiss the menu")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Placement"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s                  %s\n", keyStyle.Render("c"), descStyle.Render("Cycle the anchor corner")))
	help.WriteString(fmt.Sprintf("  %s                  %s\n", keyStyle.Render("m"), descStyle.Render("Cycle anchor margins")))
	help.WriteString(fmt.Sprintf("  %s                  %s\n", keyStyle.Render("r"), descStyle.Render("Toggle right-to-left layout")))
	help.WriteString(fmt.Sprintf("  %s                  %s\n", keyStyle.Render("Q"), descStyle.Render("Toggle quick open (no animation)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s                  %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s                  %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
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

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create oviewer root from the content
	reader := strings.NewReader(helpContent)
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// fetchHelpPager returns a command that shows help using the ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	return func() tea.Msg {
		if m.helpOps == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(renderHelpContent())}
	}
}
