// Package app wires the stores and views into the root Bubble Tea
// model: tab routing, global keys, and the save/export/reset flows.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rterry/jewelboard/internal/intake"
	"github.com/rterry/jewelboard/internal/keys"
	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/store"
	"github.com/rterry/jewelboard/internal/theme"
	"github.com/rterry/jewelboard/internal/ui"
	"github.com/rterry/jewelboard/internal/ui/analytics"
	helpview "github.com/rterry/jewelboard/internal/ui/help"
	"github.com/rterry/jewelboard/internal/ui/jobform"
	"github.com/rterry/jewelboard/internal/ui/jobtable"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewCustom ViewState = iota
	ViewRepair
	ViewAnalytics
	ViewForm
	ViewHelp
)

// Model is the root Bubble Tea model that manages tab routing, layout,
// and access to the persistence layer.
type Model struct {
	cfg          *model.AppConfig
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap

	customStore *store.JobStore
	repairStore *store.JobStore
	history     *store.History

	customTable   jobtable.Model
	repairTable   jobtable.Model
	analyticsView analytics.Model
	formView      jobform.Model
	helpView      helpview.Model

	ready     bool
	statusMsg string
	statusErr bool
}

// New creates the root application model with both job stores and the
// history journal.
func New(cfg *model.AppConfig, custom, repair *store.JobStore, history *store.History) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		cfg:         cfg,
		currentView: ViewCustom,
		keys:        k,
		customStore: custom,
		repairStore: repair,
		history:     history,

		customTable:   jobtable.New(cfg.Variant, model.CategoryCustom, k, 80, 24),
		repairTable:   jobtable.New(cfg.Variant, model.CategoryRepair, k, 80, 24),
		analyticsView: analytics.New(cfg.Variant, 80, 24),
		formView:      jobform.New(cfg.Variant, 80, 24),
		helpView:      helpview.New(cfg.Variant, k, 80, 24),
	}

	m.customTable.SetJobs(custom.Jobs())
	m.repairTable.SetJobs(repair.Jobs())

	return m
}

// Init loads the journal so the analytics tab starts populated.
func (m Model) Init() tea.Cmd {
	return m.loadHistory()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.customTable.SetSize(contentWidth, contentHeight)
		m.repairTable.SetSize(contentWidth, contentHeight)
		m.analyticsView.SetSize(contentWidth, contentHeight)
		m.formView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case jobtable.EditRequestedMsg:
		m.previousView = m.currentView
		m.currentView = ViewForm
		return m, m.formView.StartEdit(msg.Category, msg.Index, msg.Job)

	case jobform.SubmittedMsg:
		// Validate before leaving the form so a rejected submission
		// keeps the typed values on screen.
		job, err := intake.Validate(m.cfg.Variant, msg.Category, msg.Submission)
		if err != nil {
			m.statusMsg = err.Error()
			m.statusErr = true
			return m, m.formView.Resume()
		}
		m.currentView = tabForCategory(msg.Category)
		return m, m.saveJob(msg.Category, msg.EditIndex, job)

	case jobform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case jobSavedMsg:
		if msg.err != nil {
			m.statusMsg = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.refreshPanels()
		if msg.created {
			m.statusMsg = fmt.Sprintf("Added %s", msg.jobID)
		} else {
			m.statusMsg = fmt.Sprintf("Updated %s", msg.jobID)
		}
		m.statusErr = false
		return m, m.loadHistory()

	case exportDoneMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Export failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Exported to %s", msg.path)
		m.statusErr = false
		return m, m.loadHistory()

	case resetDoneMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Reset failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.refreshPanels()
		m.statusMsg = fmt.Sprintf("Reset %s jobs to demo data", msg.category)
		m.statusErr = false
		return m, m.loadHistory()

	case historyLoadedMsg:
		// A journal read failure only degrades the activity panel.
		m.analyticsView.SetData(m.customStore.Jobs(), m.repairStore.Jobs(), msg.events, msg.counts)
		return m, nil

	case tea.KeyMsg:
		if handled, next, cmd := m.handleGlobalKey(msg); handled {
			return next, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that apply regardless of the active
// table tab. Keys are never intercepted while the form or a search
// input has focus.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m, tea.Quit
	}

	if m.currentView == ViewForm || m.typingInSearch() {
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		return true, m, tea.Quit

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}

	case "1":
		m.currentView = ViewCustom
		return true, m, nil

	case "2":
		m.currentView = ViewRepair
		return true, m, nil

	case "3":
		m.currentView = ViewAnalytics
		return true, m, nil

	case "a":
		if c, ok := m.activeCategory(); ok {
			m.previousView = m.currentView
			m.currentView = ViewForm
			return true, m, m.formView.StartCreate(c)
		}

	case "x":
		if c, ok := m.activeCategory(); ok {
			return true, m, m.exportCategory(c)
		}

	case "R":
		if c, ok := m.activeCategory(); ok {
			return true, m, m.resetCategory(c)
		}
	}

	return false, m, nil
}

// typingInSearch reports whether the active table's search bar has
// focus.
func (m Model) typingInSearch() bool {
	switch m.currentView {
	case ViewCustom:
		return m.customTable.Searching()
	case ViewRepair:
		return m.repairTable.Searching()
	}
	return false
}

// activeCategory maps the current tab to a job category.
func (m Model) activeCategory() (model.Category, bool) {
	switch m.currentView {
	case ViewCustom:
		return model.CategoryCustom, true
	case ViewRepair:
		return model.CategoryRepair, true
	}
	return "", false
}

func tabForCategory(c model.Category) ViewState {
	if c == model.CategoryRepair {
		return ViewRepair
	}
	return ViewCustom
}

// refreshPanels pushes the current store contents into every view.
func (m *Model) refreshPanels() {
	m.customTable.SetJobs(m.customStore.Jobs())
	m.repairTable.SetJobs(m.repairStore.Jobs())
}

// storeFor returns the store backing a category.
func (m Model) storeFor(c model.Category) *store.JobStore {
	if c == model.CategoryRepair {
		return m.repairStore
	}
	return m.customStore
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewCustom:
		m.customTable, cmd = m.customTable.Update(msg)
	case ViewRepair:
		m.repairTable, cmd = m.repairTable.Update(msg)
	case ViewAnalytics:
		m.analyticsView, cmd = m.analyticsView.Update(msg)
	case ViewForm:
		m.formView, cmd = m.formView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.title(), m.cfg.DataDir)
	tabs := m.layout.RenderTabs(m.tabLabels(), m.activeTab())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, tabs, content, statusBar)
}

func (m Model) title() string {
	if m.cfg.Variant == model.VariantRick {
		return "Rick's Jewelry Ops"
	}
	return "Jewelry Business Dashboard"
}

func (m Model) tabLabels() []string {
	third := "Analytics"
	if m.cfg.Variant == model.VariantRick {
		third = "Front Desk"
	}
	return []string{"Custom Jobs", "Repairs", third}
}

// activeTab maps the view state to a tab index; the form and help
// overlays highlight the tab they were opened from.
func (m Model) activeTab() int {
	view := m.currentView
	if view == ViewForm || view == ViewHelp {
		view = m.previousView
	}
	switch view {
	case ViewRepair:
		return 1
	case ViewAnalytics:
		return 2
	default:
		return 0
	}
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewCustom:
		return m.customTable.View()
	case ViewRepair:
		return m.repairTable.View()
	case ViewAnalytics:
		return m.analyticsView.View()
	case ViewForm:
		return m.formView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// statusLine shows the last action result when present, otherwise key
// hints for the active view.
func (m Model) statusLine() string {
	if m.statusMsg != "" {
		if m.statusErr {
			return theme.ErrorStyle.Render(m.statusMsg)
		}
		return m.statusMsg
	}

	switch m.currentView {
	case ViewForm:
		return "enter next field | esc cancel"
	case ViewHelp:
		return "? close help | esc back"
	case ViewAnalytics:
		return "j/k scroll | 1/2 job tabs | q quit"
	default:
		return "a add | enter edit | / search | f status | p paid | o overdue | b owner | x export | R reset | ? help"
	}
}
