package jobtable

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/rterry/jewelboard/internal/filter"
	"github.com/rterry/jewelboard/internal/keys"
	"github.com/rterry/jewelboard/internal/model"
)

func newTestPanel(v model.Variant, c model.Category) Model {
	return New(v, c, keys.DefaultKeyMap(), 80, 24)
}

func pressOverdueKey(m Model) Model {
	next, _ := m.handleNormalKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	return next
}

func TestFilterLineHidesInactiveOverdueInShop(t *testing.T) {
	m := newTestPanel(model.VariantShop, model.CategoryCustom)

	assert.NotContains(t, m.renderFilterLine(), "overdue:")
}

func TestFilterLineShowsActiveOverdueFilterInShop(t *testing.T) {
	m := newTestPanel(model.VariantShop, model.CategoryCustom)

	m = pressOverdueKey(m)
	assert.Equal(t, filter.Only, m.spec.Overdue)
	assert.Contains(t, m.renderFilterLine(), "overdue:")
	assert.Contains(t, m.renderFilterLine(), "Only overdue")

	m = pressOverdueKey(m)
	assert.Equal(t, filter.Exclude, m.spec.Overdue)
	assert.Contains(t, m.renderFilterLine(), "Not overdue")

	m = pressOverdueKey(m)
	assert.Equal(t, filter.All, m.spec.Overdue)
	assert.NotContains(t, m.renderFilterLine(), "overdue:")
}

func TestFilterLineAlwaysShowsOverdueInRick(t *testing.T) {
	m := newTestPanel(model.VariantRick, model.CategoryRepair)

	assert.Contains(t, m.renderFilterLine(), "overdue: All")
}

func TestFilterLineNamesSingleStageAndPaidState(t *testing.T) {
	m := newTestPanel(model.VariantShop, model.CategoryRepair)

	m.cycleStatusFilter()
	m.spec.Paid = filter.Exclude

	line := m.renderFilterLine()
	assert.Contains(t, line, string(model.StatusIntake))
	assert.Contains(t, line, "Unpaid")
}
