// Package jobform is the add/edit form for a job record, built on huh.
// It collects raw field values; the intake validator owns normalization
// and admission.
package jobform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rterry/jewelboard/internal/intake"
	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/theme"
)

// SubmittedMsg is dispatched when the form completes. EditIndex is -1
// for a new record, otherwise the authoritative index being edited.
type SubmittedMsg struct {
	Category   model.Category
	EditIndex  int
	Submission intake.Submission
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	jobID      string
	client     string
	item       string
	repairType string
	assignedTo string
	complexity string
	status     string
	intakeDate string
	targetDate string
	totalPrice string
	deposit    string
	notes      string
}

// Model is the Bubble Tea model for the add/edit job form.
type Model struct {
	variant  model.Variant
	category model.Category
	form     *huh.Form
	fb       *formBindings
	editIdx  int
	width    int
	height   int
}

// New creates a job form model for a variant.
func New(v model.Variant, width, height int) Model {
	return Model{
		variant: v,
		fb:      &formBindings{},
		editIdx: -1,
		width:   width,
		height:  height,
	}
}

// StartCreate initializes the form for adding a job to a category.
func (m *Model) StartCreate(c model.Category) tea.Cmd {
	m.category = c
	m.editIdx = -1
	*m.fb = formBindings{
		status:     string(model.DefaultStatus(c)),
		intakeDate: time.Now().Format("2006-01-02"),
	}
	if m.variant.HasComplexity() {
		if c == model.CategoryRepair {
			m.fb.complexity = string(model.ComplexitySimple)
		} else {
			m.fb.complexity = string(model.ComplexityMedium)
		}
	}
	if roster := model.RosterFor(m.variant, c); len(roster) > 0 {
		m.fb.assignedTo = roster[0]
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing record's values.
func (m *Model) StartEdit(c model.Category, index int, j model.Job) tea.Cmd {
	m.category = c
	m.editIdx = index
	*m.fb = formBindings{
		jobID:      j.JobID,
		client:     j.Client,
		item:       j.Item,
		repairType: j.RepairType,
		assignedTo: j.AssignedTo,
		complexity: string(j.Complexity),
		status:     string(j.Status),
		intakeDate: j.IntakeDate,
		targetDate: j.TargetDate,
		totalPrice: trimZero(j.TotalPrice),
		deposit:    trimZero(j.DepositPaid),
		notes:      j.Notes,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Resume reopens the form after a rejected submission. The typed
// values survive in the bindings, so rebuilding the form restores them.
func (m *Model) Resume() tea.Cmd {
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New " + categoryTitle(m.category)
	if m.editIdx >= 0 {
		titleText = "Edit " + categoryTitle(m.category)
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorGold).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Job ID").
			Placeholder(jobIDPlaceholder(m.variant, m.category)).
			Value(&m.fb.jobID).
			Validate(validateRequired("Job ID")),
		huh.NewInput().
			Title("Client").
			Placeholder("Full name").
			Value(&m.fb.client).
			Validate(validateRequired("Client")),
		huh.NewInput().
			Title("Item").
			Placeholder("e.g., engagement ring, pendant").
			Value(&m.fb.item),
	}

	if m.category == model.CategoryRepair {
		fields = append(fields, huh.NewInput().
			Title("Repair Type").
			Placeholder("e.g., resizing, prong retip, solder").
			Value(&m.fb.repairType))
	}

	fields = append(fields, m.assigneeField())

	if m.variant.HasComplexity() {
		opts := make([]huh.Option[string], len(model.Complexities))
		for i, c := range model.Complexities {
			opts[i] = huh.NewOption(string(c), string(c))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Complexity").
			Options(opts...).
			Value(&m.fb.complexity))
	}

	statuses := model.StatusesFor(m.category)
	statusOpts := make([]huh.Option[string], len(statuses))
	for i, st := range statuses {
		statusOpts[i] = huh.NewOption(string(st), string(st))
	}

	fields = append(fields,
		huh.NewSelect[string]().
			Title("Status").
			Options(statusOpts...).
			Value(&m.fb.status),
		huh.NewInput().
			Title("Intake Date").
			Placeholder("YYYY-MM-DD").
			Value(&m.fb.intakeDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title(m.targetDateTitle()).
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.targetDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Total Price").
			Placeholder("0.00").
			Value(&m.fb.totalPrice),
		huh.NewInput().
			Title("Deposit Paid").
			Placeholder("0.00").
			Value(&m.fb.deposit),
		huh.NewText().
			Title("Notes").
			Placeholder("Optional details...").
			Value(&m.fb.notes),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// assigneeField is a roster select in the rick variant and a free-text
// input in the shop variant.
func (m *Model) assigneeField() huh.Field {
	roster := model.RosterFor(m.variant, m.category)
	if len(roster) == 0 {
		return huh.NewInput().
			Title("Assigned To").
			Placeholder("e.g., CAD Team, Bench, Tammy").
			Value(&m.fb.assignedTo)
	}

	opts := make([]huh.Option[string], len(roster))
	for i, member := range roster {
		opts[i] = huh.NewOption(member, member)
	}
	title := "Assigned To (bench)"
	if m.category == model.CategoryCustom {
		title = "Phase Owner (CAD/Bench)"
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&m.fb.assignedTo)
}

func (m *Model) targetDateTitle() string {
	switch m.variant.TargetDateLabel(m.category) {
	case "Promised_Date":
		return "Promised Date"
	case "Est_Completion":
		return "Estimated Completion"
	default:
		return "Due Date"
	}
}

func (m Model) handleSubmit() tea.Cmd {
	sub := intake.Submission{
		JobID:      m.fb.jobID,
		Client:     m.fb.client,
		Item:       m.fb.item,
		RepairType: m.fb.repairType,
		AssignedTo: m.fb.assignedTo,
		Complexity: m.fb.complexity,
		Status:     m.fb.status,
		IntakeDate: m.fb.intakeDate,
		TargetDate: m.fb.targetDate,
		TotalPrice: m.fb.totalPrice,
		Deposit:    m.fb.deposit,
		Notes:      m.fb.notes,
	}
	category := m.category
	editIdx := m.editIdx
	return func() tea.Msg {
		return SubmittedMsg{Category: category, EditIndex: editIdx, Submission: sub}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func categoryTitle(c model.Category) string {
	if c == model.CategoryRepair {
		return "Repair Job"
	}
	return "Custom Job"
}

func jobIDPlaceholder(v model.Variant, c model.Category) string {
	switch {
	case v == model.VariantRick && c == model.CategoryCustom:
		return "C-RT-1002"
	case v == model.VariantRick:
		return "R-RT-2002"
	case c == model.CategoryRepair:
		return "R-2002"
	default:
		return "C-1002"
	}
}

// trimZero renders an amount for editing; a zero shows as empty so the
// placeholder stays visible.
func trimZero(f float64) string {
	if f == 0 {
		return ""
	}
	return fmt.Sprintf("%g", f)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
