// Package filter narrows a job collection with a conjunction of
// predicates: status membership, assignee membership, paid and overdue
// tri-states, and a case-insensitive substring search.
package filter

import (
	"strings"

	"github.com/rterry/jewelboard/internal/model"
)

// TriState is a three-way selector for the paid and overdue filters.
type TriState int

const (
	All TriState = iota
	Only    // only records with the flag set to Yes
	Exclude // only records with the flag set to No
)

// Spec is a filter specification. Statuses and Assignees are allowed
// sets: an empty set matches nothing, so NewSpec initializes both to
// the full domain, which is the no-filtering default.
type Spec struct {
	Statuses  map[model.Status]bool
	Assignees map[string]bool
	Paid      TriState
	Overdue   TriState
	Query     string

	// rosterBound records whether the variant constrains assignees to a
	// roster. Without a roster (shop variant) the assignee set is not an
	// enumerable domain and the predicate is skipped entirely.
	rosterBound bool
}

// NewSpec returns the default specification for a category and variant:
// every status allowed, every assignee allowed, both tri-states All,
// empty query.
func NewSpec(v model.Variant, c model.Category) Spec {
	s := Spec{
		Statuses:  make(map[model.Status]bool),
		Assignees: make(map[string]bool),
	}
	for _, st := range model.StatusesFor(c) {
		s.Statuses[st] = true
	}
	roster := model.RosterFor(v, c)
	s.rosterBound = len(roster) > 0
	for _, a := range roster {
		s.Assignees[a] = true
	}
	return s
}

// ToggleStatus flips a status in or out of the allowed set.
func (s *Spec) ToggleStatus(st model.Status) {
	if s.Statuses[st] {
		delete(s.Statuses, st)
	} else {
		s.Statuses[st] = true
	}
}

// ToggleAssignee flips an assignee in or out of the allowed set.
func (s *Spec) ToggleAssignee(a string) {
	if s.Assignees[a] {
		delete(s.Assignees, a)
	} else {
		s.Assignees[a] = true
	}
}

// Matches reports whether a single job satisfies every predicate.
func (s Spec) Matches(j model.Job) bool {
	if !s.Statuses[j.Status] {
		return false
	}
	if s.rosterBound && !s.Assignees[j.AssignedTo] {
		return false
	}
	switch s.Paid {
	case Only:
		if j.Paid != model.FlagYes {
			return false
		}
	case Exclude:
		if j.Paid != model.FlagNo {
			return false
		}
	}
	switch s.Overdue {
	case Only:
		if j.Overdue != model.FlagYes {
			return false
		}
	case Exclude:
		if j.Overdue != model.FlagNo {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(s.Query)); q != "" {
		found := false
		for _, field := range j.SearchText() {
			if strings.Contains(strings.ToLower(field), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the subsequence of jobs matching the spec, in their
// original relative order.
func (s Spec) Apply(jobs []model.Job) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if s.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}
