package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rterry/jewelboard/internal/model"
)

func sampleCustoms() []model.Job {
	return []model.Job{
		{
			Category: model.CategoryCustom, JobID: "C-1001", Client: "Sarah Mitchell",
			Item: "Engagement ring", AssignedTo: "CAD-1",
			Status: model.StatusCasting, Paid: model.FlagNo, Overdue: model.FlagYes,
		},
		{
			Category: model.CategoryCustom, JobID: "C-1002", Client: "James Wong",
			Item: "Gold pendant", AssignedTo: "CAD-2",
			Status: model.StatusCasting, Paid: model.FlagYes, Overdue: model.FlagNo,
		},
		{
			Category: model.CategoryCustom, JobID: "C-1003", Client: "Ring Keller",
			Item: "Bracelet", AssignedTo: "Bench-1",
			Status: model.StatusCompleted, Paid: model.FlagYes, Overdue: model.FlagNo,
		},
	}
}

func TestNewSpec_DefaultMatchesEverything(t *testing.T) {
	spec := NewSpec(model.VariantRick, model.CategoryCustom)
	jobs := sampleCustoms()

	assert.Len(t, spec.Apply(jobs), len(jobs))
}

func TestSpec_StatusFilter(t *testing.T) {
	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Statuses = map[model.Status]bool{model.StatusCasting: true}

	got := spec.Apply(sampleCustoms())
	require.Len(t, got, 2)
	assert.Equal(t, "C-1001", got[0].JobID)
	assert.Equal(t, "C-1002", got[1].JobID)
}

func TestSpec_EmptyStatusSetMatchesNothing(t *testing.T) {
	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Statuses = map[model.Status]bool{}

	assert.Empty(t, spec.Apply(sampleCustoms()))
}

func TestSpec_EmptyAssigneeSetMatchesNothing(t *testing.T) {
	spec := NewSpec(model.VariantRick, model.CategoryCustom)
	spec.Assignees = map[string]bool{}

	assert.Empty(t, spec.Apply(sampleCustoms()))
}

func TestSpec_AssigneeIgnoredWithoutRoster(t *testing.T) {
	// The shop variant has free-text assignees, so the assignee set is
	// not an enumerable domain and must not act as a predicate.
	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Assignees = map[string]bool{}

	assert.Len(t, spec.Apply(sampleCustoms()), 3)
}

func TestSpec_TriStates(t *testing.T) {
	jobs := sampleCustoms()

	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Paid = Only
	assert.Len(t, spec.Apply(jobs), 2)

	spec.Paid = Exclude
	got := spec.Apply(jobs)
	require.Len(t, got, 1)
	assert.Equal(t, "C-1001", got[0].JobID)

	spec = NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Overdue = Only
	got = spec.Apply(jobs)
	require.Len(t, got, 1)
	assert.Equal(t, "C-1001", got[0].JobID)
}

func TestSpec_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Query = "ring"

	// Matches the item "Engagement ring" and the client "Ring Keller".
	got := spec.Apply(sampleCustoms())
	require.Len(t, got, 2)
	assert.Equal(t, "C-1001", got[0].JobID)
	assert.Equal(t, "C-1003", got[1].JobID)
}

func TestSpec_QueryCoversRepairType(t *testing.T) {
	jobs := []model.Job{
		{
			Category: model.CategoryRepair, JobID: "R-2001", Client: "Maria Lopez",
			Item: "Wedding band", RepairType: "Resizing",
			Status: model.StatusIntake, Paid: model.FlagNo, Overdue: model.FlagNo,
		},
	}

	spec := NewSpec(model.VariantShop, model.CategoryRepair)
	spec.Query = "resiz"
	assert.Len(t, spec.Apply(jobs), 1)

	spec.Query = "polish"
	assert.Empty(t, spec.Apply(jobs))
}

func TestSpec_PredicatesAreConjunctive(t *testing.T) {
	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	spec.Statuses = map[model.Status]bool{model.StatusCasting: true}
	spec.Paid = Only
	spec.Query = "pendant"

	got := spec.Apply(sampleCustoms())
	require.Len(t, got, 1)
	assert.Equal(t, "C-1002", got[0].JobID)

	// Tightening any one predicate drops the match.
	spec.Overdue = Only
	assert.Empty(t, spec.Apply(sampleCustoms()))
}

func TestSpec_ApplyPreservesOrderAndIsStable(t *testing.T) {
	spec := NewSpec(model.VariantShop, model.CategoryCustom)
	jobs := sampleCustoms()

	once := spec.Apply(jobs)
	twice := spec.Apply(once)
	assert.Equal(t, once, twice)
}

func TestSpec_Toggles(t *testing.T) {
	spec := NewSpec(model.VariantRick, model.CategoryCustom)

	spec.ToggleStatus(model.StatusCasting)
	assert.False(t, spec.Statuses[model.StatusCasting])
	spec.ToggleStatus(model.StatusCasting)
	assert.True(t, spec.Statuses[model.StatusCasting])

	spec.ToggleAssignee("CAD-1")
	assert.False(t, spec.Assignees["CAD-1"])
	spec.ToggleAssignee("CAD-1")
	assert.True(t, spec.Assignees["CAD-1"])
}
