package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/store"
)

func TestActivityPanelShowsAllTimeTotals(t *testing.T) {
	m := New(model.VariantShop, 80, 24)

	events := []store.Event{{
		Category:  model.CategoryCustom,
		JobID:     "C-1002",
		Action:    store.ActionAdd,
		Detail:    "added",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}}
	counts := map[string]int{
		store.ActionAdd:    3,
		store.ActionEdit:   2,
		store.ActionExport: 1,
	}
	m.SetData(nil, nil, events, counts)

	body := m.renderRecentActivity()
	assert.Contains(t, body, "all time: 3 added, 2 edited, 1 exports, 0 resets")
	assert.Contains(t, body, "C-1002")
}

func TestActivityPanelEmptyJournal(t *testing.T) {
	m := New(model.VariantRick, 80, 24)

	m.SetData(nil, nil, nil, nil)

	body := m.renderRecentActivity()
	assert.Contains(t, body, "No recorded activity yet.")
	assert.NotContains(t, body, "all time:")
}
