// Package aggregate computes the summary metrics, stage histograms and
// front-desk slices displayed above and beside the job tables.
package aggregate

import (
	"sort"

	"github.com/rterry/jewelboard/internal/model"
)

// Summary holds the headline metrics for a (filtered) collection.
type Summary struct {
	Open        int
	Completed   int
	Overdue     int
	ListedTotal float64
	Outstanding float64
}

// StageCount is one bar of a pipeline histogram.
type StageCount struct {
	Stage model.Status
	Count int
}

// Summarize computes the headline metrics. An empty collection yields
// all zeros.
func Summarize(jobs []model.Job) Summary {
	var s Summary
	for _, j := range jobs {
		if j.IsCompleted() {
			s.Completed++
		} else {
			s.Open++
		}
		if j.Overdue == model.FlagYes {
			s.Overdue++
		}
		s.ListedTotal += j.TotalPrice
		s.Outstanding += j.RemainingBalance
	}
	return s
}

// StageHistogram counts records per status, reindexed over the full
// ordered stage list for the category so every stage appears, zero
// when absent.
func StageHistogram(jobs []model.Job, c model.Category) []StageCount {
	counts := make(map[model.Status]int, len(jobs))
	for _, j := range jobs {
		counts[j.Status]++
	}
	stages := model.StatusesFor(c)
	out := make([]StageCount, len(stages))
	for i, st := range stages {
		out[i] = StageCount{Stage: st, Count: counts[st]}
	}
	return out
}

// OwnerLoad is one bar of the bench-load histogram.
type OwnerLoad struct {
	Owner string
	Count int
}

// BenchLoad counts non-completed jobs per roster member, reindexed over
// the roster so every member appears.
func BenchLoad(jobs []model.Job, roster []string) []OwnerLoad {
	counts := make(map[string]int, len(roster))
	for _, j := range jobs {
		if !j.IsCompleted() {
			counts[j.AssignedTo]++
		}
	}
	out := make([]OwnerLoad, len(roster))
	for i, member := range roster {
		out[i] = OwnerLoad{Owner: member, Count: counts[member]}
	}
	return out
}

// Owing returns the jobs with money outstanding, sorted by remaining
// balance descending. Input order breaks ties (stable sort).
func Owing(jobs []model.Job) []model.Job {
	var out []model.Job
	for _, j := range jobs {
		if j.RemainingBalance > 0 {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].RemainingBalance > out[b].RemainingBalance
	})
	return out
}

// PickupUnpaid returns the jobs sitting in Ready for Pickup that still
// have a balance due. The front desk works from this list.
func PickupUnpaid(jobs []model.Job) []model.Job {
	var out []model.Job
	for _, j := range jobs {
		if j.Status == model.StatusReadyForPickup && j.Paid == model.FlagNo {
			out = append(out, j)
		}
	}
	return out
}

// OverdueJobs returns the jobs flagged overdue, in input order.
func OverdueJobs(jobs []model.Job) []model.Job {
	var out []model.Job
	for _, j := range jobs {
		if j.Overdue == model.FlagYes {
			out = append(out, j)
		}
	}
	return out
}
