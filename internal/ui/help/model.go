// Package help renders the keyboard reference overlay, including the
// tab legend for the active shop variant.
package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rterry/jewelboard/internal/keys"
	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/theme"
)

// Model is the help overlay view.
type Model struct {
	variant model.Variant
	keys    *keys.KeyMap
	help    help.Model
	width   int
	height  int
}

// New creates a help view model for a variant.
func New(v model.Variant, keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		variant: v,
		keys:    keys,
		help:    h,
		width:   width,
		height:  height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Keyboard Shortcuts")

	m.help.Width = m.width - 4
	m.help.ShowAll = true
	helpText := m.help.View(m.keys)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		theme.HelpStyle.Render(m.tabLegend()),
		"",
		helpText,
	)

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// tabLegend names the number keys for the active variant, since the
// third tab differs between the shop and rick layouts.
func (m Model) tabLegend() string {
	if m.variant == model.VariantRick {
		return "Tabs: 1 Custom Jobs | 2 Repairs | 3 Front Desk"
	}
	return "Tabs: 1 Custom Jobs | 2 Repairs | 3 Analytics"
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
