// Package derive recomputes the derived job columns: remaining balance,
// paid flag and overdue flag. It is applied to the whole collection on
// every load, add and edit, and always overwrites whatever was stored,
// including values a user edited by hand.
package derive

import (
	"strconv"
	"strings"
	"time"

	"github.com/rterry/jewelboard/internal/model"
)

// dateLayouts are tried in order when parsing a target date. Anything
// that fails all of them is silently treated as "no date".
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseAmount coerces a raw money value to a non-negative float.
// Non-numeric, missing or negative input yields 0; it never errors.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// ParseDate parses a calendar date from a raw field value. The second
// return is false when the field is empty or unparseable.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Remaining returns max(0, total-deposit).
func Remaining(total, deposit float64) float64 {
	rem := total - deposit
	if rem < 0 {
		return 0
	}
	return rem
}

// PaidFlag returns FlagYes iff the remaining balance is exactly zero.
// Equality is exact on the subtraction result, not epsilon-tolerant.
func PaidFlag(remaining float64) string {
	if remaining == 0 {
		return model.FlagYes
	}
	return model.FlagNo
}

// OverdueFlag computes the overdue column. Completed jobs are never
// overdue; otherwise the job is overdue iff targetDate parses and falls
// strictly before today. Bad dates are "not overdue", not an error.
func OverdueFlag(targetDate string, status model.Status, today time.Time) string {
	if status == model.StatusCompleted {
		return model.FlagNo
	}
	d, ok := ParseDate(targetDate)
	if !ok {
		return model.FlagNo
	}
	y, m, day := today.Date()
	midnight := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := d.Date()
	d = time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	if d.Before(midnight) {
		return model.FlagYes
	}
	return model.FlagNo
}

// Recompute rewrites the derived columns of a single job in place,
// using today as the overdue reference date.
func Recompute(j *model.Job, today time.Time) {
	if j.TotalPrice < 0 {
		j.TotalPrice = 0
	}
	if j.DepositPaid < 0 {
		j.DepositPaid = 0
	}
	j.RemainingBalance = Remaining(j.TotalPrice, j.DepositPaid)
	j.Paid = PaidFlag(j.RemainingBalance)
	j.Overdue = OverdueFlag(j.TargetDate, j.Status, today)
}

// RecomputeAll rewrites the derived columns of every job in the
// collection, in place.
func RecomputeAll(jobs []model.Job, today time.Time) {
	for i := range jobs {
		Recompute(&jobs[i], today)
	}
}
