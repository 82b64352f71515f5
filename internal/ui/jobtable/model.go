// Package jobtable is the per-category dashboard panel: summary
// metrics, the filterable job table, and the stage histogram.
package jobtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rterry/jewelboard/internal/aggregate"
	"github.com/rterry/jewelboard/internal/filter"
	"github.com/rterry/jewelboard/internal/keys"
	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/theme"
	"github.com/rterry/jewelboard/internal/ui"
)

// EditRequestedMsg is sent when the user selects a row for editing.
// Index is the record's position in the authoritative collection, not
// the filtered view.
type EditRequestedMsg struct {
	Category model.Category
	Index    int
	Job      model.Job
}

// Model is the dashboard panel for one job category.
type Model struct {
	variant  model.Variant
	category model.Category
	keys     *keys.KeyMap

	jobs    []model.Job // full collection, derived fields current
	visible []int       // authoritative index per table row

	spec        filter.Spec
	statusCycle int // 0 = all, n = single status n-1
	ownerCycle  int // 0 = all, n = single owner n-1

	table       table.Model
	searchMode  bool
	searchInput textinput.Model

	width  int
	height int
}

// New creates the panel for a category.
func New(v model.Variant, c model.Category, k *keys.KeyMap, width, height int) Model {
	t := table.New(
		table.WithColumns(columnsFor(v, c, width)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(theme.ColorGold).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Bold(true).
		Foreground(theme.ColorWhite).
		Background(theme.ColorSubtle)
	t.SetStyles(styles)

	si := textinput.New()
	si.Placeholder = searchPlaceholder(c)
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		variant:     v,
		category:    c,
		keys:        k,
		spec:        filter.NewSpec(v, c),
		table:       t,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetJobs replaces the panel's view of the collection and refreshes
// the filtered rows.
func (m *Model) SetJobs(jobs []model.Job) {
	m.jobs = jobs
	m.refreshRows()
}

// Update handles messages for the panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.searchMode {
		return m.handleSearchKeys(keyMsg)
	}
	return m.handleNormalKeys(keyMsg)
}

// handleSearchKeys processes key input while the search bar is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.spec.Query = m.searchInput.Value()
		m.refreshRows()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.spec.Query = ""
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		row := m.table.Cursor()
		if row < 0 || row >= len(m.visible) {
			return m, nil
		}
		idx := m.visible[row]
		job := m.jobs[idx]
		category := m.category
		return m, func() tea.Msg {
			return EditRequestedMsg{Category: category, Index: idx, Job: job}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.FilterStatus):
		m.cycleStatusFilter()
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.FilterPaid):
		m.spec.Paid = nextTriState(m.spec.Paid)
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.FilterOverdue):
		m.spec.Overdue = nextTriState(m.spec.Overdue)
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.FilterOwner):
		m.cycleOwnerFilter()
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycleStatusFilter steps the status filter through "all stages"
// followed by each single stage in pipeline order.
func (m *Model) cycleStatusFilter() {
	stages := model.StatusesFor(m.category)
	m.statusCycle = (m.statusCycle + 1) % (len(stages) + 1)

	m.spec.Statuses = make(map[model.Status]bool)
	if m.statusCycle == 0 {
		for _, st := range stages {
			m.spec.Statuses[st] = true
		}
		return
	}
	m.spec.Statuses[stages[m.statusCycle-1]] = true
}

// cycleOwnerFilter steps the assignee filter through "whole roster"
// followed by each single member. No-op without a roster.
func (m *Model) cycleOwnerFilter() {
	roster := model.RosterFor(m.variant, m.category)
	if len(roster) == 0 {
		return
	}
	m.ownerCycle = (m.ownerCycle + 1) % (len(roster) + 1)

	m.spec.Assignees = make(map[string]bool)
	if m.ownerCycle == 0 {
		for _, member := range roster {
			m.spec.Assignees[member] = true
		}
		return
	}
	m.spec.Assignees[roster[m.ownerCycle-1]] = true
}

// refreshRows reapplies the filter and rebuilds the table rows.
func (m *Model) refreshRows() {
	m.visible = m.visible[:0]
	var rows []table.Row
	for i, j := range m.jobs {
		if !m.spec.Matches(j) {
			continue
		}
		m.visible = append(m.visible, i)
		rows = append(rows, rowFor(m.variant, m.category, j))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// Searching reports whether the search input currently has focus, so
// the root model can avoid treating typed letters as global shortcuts.
func (m Model) Searching() bool {
	return m.searchMode
}

// Filtered returns the jobs currently passing the filter, in order.
func (m Model) Filtered() []model.Job {
	out := make([]model.Job, 0, len(m.visible))
	for _, idx := range m.visible {
		out = append(out, m.jobs[idx])
	}
	return out
}

// View renders the metrics row, filter line, table and stage chart.
func (m Model) View() string {
	filtered := m.Filtered()
	sections := []string{
		m.renderMetrics(aggregate.Summarize(filtered)),
		m.renderFilterLine(),
	}

	if m.searchMode {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View()))
	}

	if len(filtered) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Width(m.width).
			Height(m.tableHeight()).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No matching jobs.\nTry adjusting your filters."))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderHistogram(filtered))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMetrics renders the four headline metrics for the filtered view.
func (m Model) renderMetrics(s aggregate.Summary) string {
	metrics := []struct {
		label string
		value string
	}{
		{openLabel(m.category), fmt.Sprintf("%d", s.Open)},
		{"Overdue", fmt.Sprintf("%d", s.Overdue)},
		{"Listed revenue", ui.Money(s.ListedTotal)},
		{"Outstanding", ui.Money(s.Outstanding)},
	}

	parts := make([]string, len(metrics))
	for i, metric := range metrics {
		parts[i] = theme.MetricLabelStyle.Render(metric.label+" ") +
			theme.MetricValueStyle.Render(metric.value)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "   "))
}

// renderFilterLine shows the active filter state. The overdue label
// appears whenever that filter is active, even in the shop variant
// where the column itself is not persisted.
func (m Model) renderFilterLine() string {
	parts := []string{
		"status: " + m.statusFilterLabel(),
		"paid: " + m.paidFilterLabel(),
	}
	if m.variant.HasOverdue() || m.spec.Overdue != filter.All {
		parts = append(parts, "overdue: "+m.overdueFilterLabel())
	}
	if roster := model.RosterFor(m.variant, m.category); len(roster) > 0 {
		parts = append(parts, "owner: "+m.ownerFilterLabel(roster))
	}
	if q := strings.TrimSpace(m.spec.Query); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}
	return theme.HelpStyle.Padding(0, 1).Render(strings.Join(parts, " | "))
}

func (m Model) statusFilterLabel() string {
	if m.statusCycle == 0 {
		return "All"
	}
	stage := model.StatusesFor(m.category)[m.statusCycle-1]
	return theme.StatusStyle(stage).Render(string(stage))
}

func (m Model) paidFilterLabel() string {
	switch m.spec.Paid {
	case filter.Only:
		return theme.FlagStyle(model.FlagYes, true).Render("Paid")
	case filter.Exclude:
		return theme.FlagStyle(model.FlagNo, true).Render("Unpaid")
	default:
		return "All"
	}
}

func (m Model) overdueFilterLabel() string {
	switch m.spec.Overdue {
	case filter.Only:
		return theme.FlagStyle(model.FlagYes, false).Render("Only overdue")
	case filter.Exclude:
		return theme.FlagStyle(model.FlagNo, false).Render("Not overdue")
	default:
		return "All"
	}
}

func (m Model) ownerFilterLabel(roster []string) string {
	if m.ownerCycle == 0 {
		return "All"
	}
	return roster[m.ownerCycle-1]
}

// renderHistogram draws the per-stage bar chart for the filtered view.
func (m Model) renderHistogram(filtered []model.Job) string {
	hist := aggregate.StageHistogram(filtered, m.category)

	max := 0
	labelWidth := 0
	for _, sc := range hist {
		if sc.Count > max {
			max = sc.Count
		}
		if len(sc.Stage) > labelWidth {
			labelWidth = len(sc.Stage)
		}
	}

	barSpace := m.width - labelWidth - 10
	if barSpace < 10 {
		barSpace = 10
	}

	var lines []string
	for _, sc := range hist {
		barLen := 0
		if max > 0 {
			barLen = sc.Count * barSpace / max
		}
		line := fmt.Sprintf("%-*s %s %d",
			labelWidth, sc.Stage,
			theme.BarStyle.Render(strings.Repeat("█", barLen)),
			sc.Count,
		)
		lines = append(lines, line)
	}

	title := theme.MetricLabelStyle.Render("Pipeline")
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}

// SetSize updates the panel dimensions and rebuilds the table columns.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columnsFor(m.variant, m.category, width))
	m.table.SetWidth(width)
	m.table.SetHeight(m.tableHeight())
	m.searchInput.Width = width - 4
}

// tableHeight is what is left after metrics, filter line and histogram.
func (m Model) tableHeight() int {
	stages := len(model.StatusesFor(m.category))
	h := m.height - 2 - stages - 2
	if h < 4 {
		h = 4
	}
	return h
}

// rowFor builds a display row for a job, widest layout first.
func rowFor(v model.Variant, c model.Category, j model.Job) table.Row {
	row := table.Row{j.JobID, j.Client, j.Item}
	if c == model.CategoryRepair {
		row = append(row, j.RepairType)
	}
	row = append(row, j.AssignedTo)
	if v.HasComplexity() {
		row = append(row, string(j.Complexity))
	}
	row = append(row,
		string(j.Status),
		j.TargetDate,
		ui.Money(j.TotalPrice),
		ui.Money(j.DepositPaid),
		ui.Money(j.RemainingBalance),
		j.Paid,
	)
	if v.HasOverdue() {
		row = append(row, j.Overdue)
	}
	return row
}

// columnsFor builds the table columns for a variant and category,
// splitting the width across them.
func columnsFor(v model.Variant, c model.Category, width int) []table.Column {
	type col struct {
		title  string
		weight int
	}

	cols := []col{{"Job ID", 3}, {"Client", 4}, {"Item", 4}}
	if c == model.CategoryRepair {
		cols = append(cols, col{"Repair", 3})
	}
	if v == model.VariantRick && c == model.CategoryCustom {
		cols = append(cols, col{"Owner", 3})
	} else {
		cols = append(cols, col{"Assigned", 3})
	}
	if v.HasComplexity() {
		cols = append(cols, col{"Cx", 3})
	}
	cols = append(cols,
		col{"Status", 4},
		col{dateTitle(v, c), 3},
		col{"Total", 3},
		col{"Deposit", 3},
		col{"Remaining", 3},
		col{"Paid", 2},
	)
	if v.HasOverdue() {
		cols = append(cols, col{"Overdue", 2})
	}

	total := 0
	for _, heading := range cols {
		total += heading.weight
	}
	usable := width - len(cols) - 2
	if usable < total {
		usable = total
	}

	out := make([]table.Column, len(cols))
	for i, heading := range cols {
		out[i] = table.Column{
			Title: heading.title,
			Width: usable * heading.weight / total,
		}
	}
	return out
}

func dateTitle(v model.Variant, c model.Category) string {
	switch v.TargetDateLabel(c) {
	case "Promised_Date":
		return "Promised"
	case "Est_Completion":
		return "Est Done"
	default:
		return "Due"
	}
}

func openLabel(c model.Category) string {
	if c == model.CategoryRepair {
		return "Open repairs"
	}
	return "Open jobs"
}

func searchPlaceholder(c model.Category) string {
	if c == model.CategoryRepair {
		return "search job / client / item / repair..."
	}
	return "search job / client / item..."
}

// nextTriState cycles All -> Only -> Exclude -> All.
func nextTriState(t filter.TriState) filter.TriState {
	switch t {
	case filter.All:
		return filter.Only
	case filter.Only:
		return filter.Exclude
	default:
		return filter.All
	}
}
