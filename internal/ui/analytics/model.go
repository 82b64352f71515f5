// Package analytics renders the third tab: revenue and pipeline
// overview in the shop variant, front-desk worklists in the rick
// variant, plus recent store activity from the history journal.
package analytics

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/rterry/jewelboard/internal/aggregate"
	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/store"
	"github.com/rterry/jewelboard/internal/theme"
	"github.com/rterry/jewelboard/internal/ui"
)

// Model is the analytics / front-desk tab.
type Model struct {
	variant model.Variant

	custom []model.Job
	repair []model.Job
	events []store.Event
	counts map[string]int

	viewport viewport.Model
	width    int
	height   int
}

// New creates the analytics tab for a variant.
func New(v model.Variant, width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		variant:  v,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetData refreshes the tab with current collections, journal entries
// and the per-action journal totals. Derived fields must already be
// recomputed.
func (m *Model) SetData(custom, repair []model.Job, events []store.Event, counts map[string]int) {
	m.custom = custom
	m.repair = repair
	m.events = events
	m.counts = counts
	m.viewport.SetContent(m.renderContent())
}

// Update scrolls the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the tab.
func (m Model) View() string {
	return m.viewport.View()
}

// SetSize updates the tab dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	var sections []string
	if m.variant == model.VariantRick {
		sections = append(sections,
			m.renderFrontDeskMetrics(),
			m.renderPickupUnpaid(),
			m.renderOverdueList(),
			m.renderBenchLoad(),
		)
	} else {
		sections = append(sections,
			m.renderRevenueMetrics(),
			m.renderPipelines(),
			m.renderOwing(),
		)
	}
	sections = append(sections, m.renderRecentActivity())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRevenueMetrics is the shop-variant headline row.
func (m Model) renderRevenueMetrics() string {
	customSummary := aggregate.Summarize(m.custom)
	repairSummary := aggregate.Summarize(m.repair)

	return m.metricsRow([]metric{
		{"Custom revenue (listed)", ui.Money(customSummary.ListedTotal)},
		{"Repair revenue (listed)", ui.Money(repairSummary.ListedTotal)},
		{"Total outstanding", ui.Money(customSummary.Outstanding + repairSummary.Outstanding)},
	})
}

// renderFrontDeskMetrics is the rick-variant headline row.
func (m Model) renderFrontDeskMetrics() string {
	pickupUnpaid := aggregate.PickupUnpaid(m.custom)

	return m.metricsRow([]metric{
		{"Pickup-ready customs (unpaid)", fmt.Sprintf("%d", len(pickupUnpaid))},
		{"Overdue customs", fmt.Sprintf("%d", aggregate.Summarize(m.custom).Overdue)},
		{"Overdue repairs", fmt.Sprintf("%d", aggregate.Summarize(m.repair).Overdue)},
	})
}

// renderPipelines draws both stage histograms.
func (m Model) renderPipelines() string {
	left := m.renderHistogram("Custom pipeline", aggregate.StageHistogram(m.custom, model.CategoryCustom))
	right := m.renderHistogram("Repair pipeline", aggregate.StageHistogram(m.repair, model.CategoryRepair))
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

// renderOwing lists jobs with money outstanding across both pipelines,
// largest balance first.
func (m Model) renderOwing() string {
	owed := append(aggregate.Owing(m.custom), aggregate.Owing(m.repair)...)
	owed = aggregate.Owing(owed)

	if len(owed) == 0 {
		return m.panel("Outstanding balances", theme.HelpStyle.Render("No outstanding balances."))
	}

	var lines []string
	for _, j := range owed {
		lines = append(lines, fmt.Sprintf("%-8s %-10s %-20s %s %s",
			typeLabel(j.Category), j.JobID, clip(j.Client, 20), stageCell(j.Status),
			ui.Money(j.RemainingBalance)))
	}
	return m.panel("Outstanding balances (who owes money)", strings.Join(lines, "\n"))
}

// renderPickupUnpaid lists pickup-ready unpaid jobs for the front desk.
func (m Model) renderPickupUnpaid() string {
	var lines []string
	for _, j := range aggregate.PickupUnpaid(m.custom) {
		lines = append(lines, fmt.Sprintf("%-8s %-10s %-20s owner %-10s %s due %s",
			"Custom", j.JobID, clip(j.Client, 20), j.AssignedTo,
			complexityCell(j.Complexity), ui.Money(j.RemainingBalance)))
	}
	for _, j := range aggregate.PickupUnpaid(m.repair) {
		lines = append(lines, fmt.Sprintf("%-8s %-10s %-20s bench %-10s %s due %s",
			"Repair", j.JobID, clip(j.Client, 20), j.AssignedTo,
			complexityCell(j.Complexity), ui.Money(j.RemainingBalance)))
	}
	if len(lines) == 0 {
		return m.panel("Pickup-ready but unpaid", theme.HelpStyle.Render("Nothing waiting on payment."))
	}
	return m.panel("Pickup-ready but unpaid", strings.Join(lines, "\n"))
}

// renderOverdueList shows every overdue job across both pipelines.
func (m Model) renderOverdueList() string {
	var lines []string
	for _, j := range aggregate.OverdueJobs(m.custom) {
		lines = append(lines, fmt.Sprintf("%-8s %-10s %-20s %s %s due %s",
			"Custom", j.JobID, clip(j.Client, 20), stageCell(j.Status),
			complexityCell(j.Complexity), j.TargetDate))
	}
	for _, j := range aggregate.OverdueJobs(m.repair) {
		lines = append(lines, fmt.Sprintf("%-8s %-10s %-20s %s %s promised %s",
			"Repair", j.JobID, clip(j.Client, 20), stageCell(j.Status),
			complexityCell(j.Complexity), j.TargetDate))
	}
	if len(lines) == 0 {
		return m.panel("Overdue jobs", theme.HelpStyle.Render("No overdue jobs."))
	}
	return m.panel("Overdue jobs", strings.Join(lines, "\n"))
}

// renderBenchLoad shows open repairs per bench member.
func (m Model) renderBenchLoad() string {
	load := aggregate.BenchLoad(m.repair, model.BenchTeam)

	max := 0
	for _, ol := range load {
		if ol.Count > max {
			max = ol.Count
		}
	}

	var lines []string
	for _, ol := range load {
		barLen := 0
		if max > 0 {
			barLen = ol.Count * 30 / max
		}
		lines = append(lines, fmt.Sprintf("%-10s %s %d",
			ol.Owner, theme.BarStyle.Render(strings.Repeat("█", barLen)), ol.Count))
	}
	return m.panel("Repair load by bench", strings.Join(lines, "\n"))
}

// renderRecentActivity shows the last journal events with the
// all-time per-action totals.
func (m Model) renderRecentActivity() string {
	if len(m.events) == 0 {
		return m.panel("Recent activity", theme.HelpStyle.Render("No recorded activity yet."))
	}
	lines := []string{theme.HelpStyle.Render(m.activityTotals()), ""}
	for _, e := range m.events {
		lines = append(lines, fmt.Sprintf("%s  %-6s %-8s %-10s %s",
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			e.Action, typeLabel(e.Category), e.JobID, e.Detail))
	}
	return m.panel("Recent activity", strings.Join(lines, "\n"))
}

// activityTotals summarizes the whole journal, not just the window
// shown below it.
func (m Model) activityTotals() string {
	return fmt.Sprintf("all time: %d added, %d edited, %d exports, %d resets",
		m.counts[store.ActionAdd], m.counts[store.ActionEdit],
		m.counts[store.ActionExport], m.counts[store.ActionReset])
}

func (m Model) renderHistogram(title string, hist []aggregate.StageCount) string {
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

	var lines []string
	for _, sc := range hist {
		barLen := 0
		if max > 0 {
			barLen = sc.Count * 30 / max
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %d",
			labelWidth, sc.Stage,
			theme.BarStyle.Render(strings.Repeat("█", barLen)), sc.Count))
	}
	return m.panel(title, strings.Join(lines, "\n"))
}

type metric struct {
	label string
	value string
}

func (m Model) metricsRow(metrics []metric) string {
	parts := make([]string, len(metrics))
	for i, mt := range metrics {
		parts[i] = theme.MetricLabelStyle.Render(mt.label+" ") +
			theme.MetricValueStyle.Render(mt.value)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "   "))
}

func (m Model) panel(title, body string) string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	heading := theme.MetricLabelStyle.Render(title)
	return theme.PanelStyle.Width(width).Render(heading + "\n" + body)
}

// stageCell pads the status before styling so ANSI codes do not skew
// the column width.
func stageCell(s model.Status) string {
	return theme.StatusStyle(s).Render(fmt.Sprintf("%-18s", clip(string(s), 18)))
}

// complexityCell renders the color-coded complexity rating; blank for
// the shop variant where jobs carry none.
func complexityCell(c model.Complexity) string {
	return theme.ComplexityStyle(c).Render(fmt.Sprintf("%-11s", string(c)))
}

func typeLabel(c model.Category) string {
	if c == model.CategoryRepair {
		return "Repair"
	}
	return "Custom"
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
