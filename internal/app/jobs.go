package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/store"
)

// jobSavedMsg is sent after a validated record is written to its
// store. A storage failure arrives as err.
type jobSavedMsg struct {
	category model.Category
	jobID    string
	created  bool
	err      error
}

// exportDoneMsg is sent after a collection is exported to a CSV copy.
type exportDoneMsg struct {
	category model.Category
	path     string
	err      error
}

// resetDoneMsg is sent after a collection is restored to its seed
// record.
type resetDoneMsg struct {
	category model.Category
	err      error
}

// historyLoadedMsg carries recent journal events and the per-action
// totals for the activity panel.
type historyLoadedMsg struct {
	events []store.Event
	counts map[string]int
	err    error
}

// saveJob persists an already-validated record and journals the
// mutation. editIndex is -1 for a new record.
func (m *Model) saveJob(c model.Category, editIndex int, job model.Job) tea.Cmd {
	s := m.storeFor(c)
	h := m.history

	return func() tea.Msg {
		created := editIndex < 0
		var err error
		if created {
			err = s.Add(job)
		} else {
			err = s.Update(editIndex, job)
		}
		if err != nil {
			return jobSavedMsg{category: c, jobID: job.JobID, err: err}
		}

		action := store.ActionEdit
		if created {
			action = store.ActionAdd
		}
		_ = h.Record(context.Background(), store.Event{
			Category: c,
			JobID:    job.JobID,
			Action:   action,
			Detail:   fmt.Sprintf("%s / %s", job.Client, job.Status),
		})

		return jobSavedMsg{category: c, jobID: job.JobID, created: created}
	}
}

// exportCategory writes a timestamped CSV copy of the collection next
// to the data files.
func (m *Model) exportCategory(c model.Category) tea.Cmd {
	s := m.storeFor(c)
	h := m.history
	dataDir := m.cfg.DataDir

	return func() tea.Msg {
		data, err := s.Export()
		if err != nil {
			return exportDoneMsg{category: c, err: err}
		}

		exportDir := filepath.Join(dataDir, "exports")
		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			return exportDoneMsg{category: c, err: err}
		}

		name := fmt.Sprintf("%s_jobs_%s.csv", c, time.Now().Format("20060102-150405"))
		path := filepath.Join(exportDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportDoneMsg{category: c, err: err}
		}

		_ = h.Record(context.Background(), store.Event{
			Category: c,
			Action:   store.ActionExport,
			Detail:   name,
		})

		return exportDoneMsg{category: c, path: path}
	}
}

// resetCategory restores a collection to its single seed record.
func (m *Model) resetCategory(c model.Category) tea.Cmd {
	s := m.storeFor(c)
	h := m.history

	return func() tea.Msg {
		if err := s.Reset(); err != nil {
			return resetDoneMsg{category: c, err: err}
		}

		_ = h.Record(context.Background(), store.Event{
			Category: c,
			Action:   store.ActionReset,
			Detail:   "restored demo data",
		})

		return resetDoneMsg{category: c}
	}
}

// loadHistory fetches recent journal events and the per-action totals.
func (m Model) loadHistory() tea.Cmd {
	h := m.history
	return func() tea.Msg {
		ctx := context.Background()
		events, err := h.Recent(ctx, 20)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		counts, err := h.CountByAction(ctx)
		return historyLoadedMsg{events: events, counts: counts, err: err}
	}
}
