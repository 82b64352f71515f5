package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rterry/jewelboard/internal/model"
)

func TestParseAmount_Coercion(t *testing.T) {
	assert.Equal(t, 1200.0, ParseAmount("1200"))
	assert.Equal(t, 1234.56, ParseAmount("$1,234.56"))
	assert.Equal(t, 120.0, ParseAmount(" 120 "))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("twelve hundred"))
	assert.Equal(t, 0.0, ParseAmount("-50"))
}

func TestParseDate_Layouts(t *testing.T) {
	for _, raw := range []string{"2026-03-15", "2026-03-15T10:30:00", "2026/03/15", "03/15/2026"} {
		d, ok := ParseDate(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, 2026, d.Year(), raw)
		assert.Equal(t, time.March, d.Month(), raw)
		assert.Equal(t, 15, d.Day(), raw)
	}

	_, ok := ParseDate("")
	assert.False(t, ok)
	_, ok = ParseDate("next Tuesday")
	assert.False(t, ok)
}

func TestRemaining_NeverNegative(t *testing.T) {
	assert.Equal(t, 1000.0, Remaining(1200, 200))
	assert.Equal(t, 0.0, Remaining(100, 100))
	assert.Equal(t, 0.0, Remaining(100, 250))
}

func TestPaidFlag_ExactZero(t *testing.T) {
	assert.Equal(t, model.FlagYes, PaidFlag(0))
	assert.Equal(t, model.FlagNo, PaidFlag(0.01))
	assert.Equal(t, model.FlagNo, PaidFlag(1000))
}

func TestOverdueFlag(t *testing.T) {
	today := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("past date is overdue", func(t *testing.T) {
		assert.Equal(t, model.FlagYes, OverdueFlag("2026-03-14", model.StatusCasting, today))
	})

	t.Run("today is not overdue", func(t *testing.T) {
		assert.Equal(t, model.FlagNo, OverdueFlag("2026-03-15", model.StatusCasting, today))
	})

	t.Run("future date is not overdue", func(t *testing.T) {
		assert.Equal(t, model.FlagNo, OverdueFlag("2026-03-16", model.StatusCasting, today))
	})

	t.Run("completed is never overdue", func(t *testing.T) {
		assert.Equal(t, model.FlagNo, OverdueFlag("2020-01-01", model.StatusCompleted, today))
	})

	t.Run("empty date is not overdue", func(t *testing.T) {
		assert.Equal(t, model.FlagNo, OverdueFlag("", model.StatusCasting, today))
	})

	t.Run("malformed date is not overdue", func(t *testing.T) {
		assert.Equal(t, model.FlagNo, OverdueFlag("soon", model.StatusCasting, today))
	})
}

func TestRecompute_OverwritesStoredValues(t *testing.T) {
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	j := model.Job{
		Category:    model.CategoryCustom,
		JobID:       "C-1001",
		Client:      "Sarah Mitchell",
		Status:      model.StatusCasting,
		TargetDate:  "2026-03-01",
		TotalPrice:  1200,
		DepositPaid: 200,
		// Hand-edited derived columns must not survive a recompute.
		RemainingBalance: 999,
		Paid:             model.FlagYes,
		Overdue:          model.FlagNo,
	}

	Recompute(&j, today)

	assert.Equal(t, 1000.0, j.RemainingBalance)
	assert.Equal(t, model.FlagNo, j.Paid)
	assert.Equal(t, model.FlagYes, j.Overdue)
}

func TestRecompute_NegativeInputsClampToZero(t *testing.T) {
	j := model.Job{TotalPrice: -100, DepositPaid: -5}
	Recompute(&j, time.Now())

	assert.Equal(t, 0.0, j.TotalPrice)
	assert.Equal(t, 0.0, j.DepositPaid)
	assert.Equal(t, 0.0, j.RemainingBalance)
	assert.Equal(t, model.FlagYes, j.Paid)
}

func TestRecomputeAll(t *testing.T) {
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	jobs := []model.Job{
		{Status: model.StatusIntake, TotalPrice: 150, TargetDate: "2026-03-10"},
		{Status: model.StatusCompleted, TotalPrice: 80, DepositPaid: 80, TargetDate: "2026-03-10"},
	}

	RecomputeAll(jobs, today)

	assert.Equal(t, model.FlagNo, jobs[0].Paid)
	assert.Equal(t, model.FlagYes, jobs[0].Overdue)
	assert.Equal(t, model.FlagYes, jobs[1].Paid)
	assert.Equal(t, model.FlagNo, jobs[1].Overdue)
}
