package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rterry/jewelboard/internal/model"
)

func TestValidate_MissingRequiredFields(t *testing.T) {
	_, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		Item: "Engagement ring",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"Job ID", "Client"}, verr.Fields)
	assert.Contains(t, err.Error(), "required")
}

func TestValidate_WhitespaceOnlyIsMissing(t *testing.T) {
	_, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:  "   ",
		Client: "Sarah Mitchell",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Job ID"}, verr.Fields)
}

func TestValidate_CoercesBadNumbers(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:      "C-1010",
		Client:     "James Wong",
		TotalPrice: "a lot",
		Deposit:    "-50",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, job.TotalPrice)
	assert.Equal(t, 0.0, job.DepositPaid)
	assert.Equal(t, 0.0, job.RemainingBalance)
	assert.Equal(t, model.FlagYes, job.Paid)
}

func TestValidate_BadDateIsKeptButNotOverdue(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:      "C-1011",
		Client:     "James Wong",
		TargetDate: "sometime in spring",
	})
	require.NoError(t, err)

	assert.Equal(t, "sometime in spring", job.TargetDate)
	assert.Equal(t, model.FlagNo, job.Overdue)
}

func TestValidate_DefaultsStatusAndIntakeDate(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryRepair, Submission{
		JobID:  "R-2010",
		Client: "Maria Lopez",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusIntake, job.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), job.IntakeDate)
}

func TestValidate_RejectsWrongPipelineStatus(t *testing.T) {
	_, err := Validate(model.VariantShop, model.CategoryRepair, Submission{
		JobID:  "R-2011",
		Client: "Maria Lopez",
		Status: string(model.StatusCasting),
	})
	assert.Error(t, err)
}

func TestValidate_RosterEnforcedInRickVariant(t *testing.T) {
	_, err := Validate(model.VariantRick, model.CategoryCustom, Submission{
		JobID:      "C-RT-1010",
		Client:     "Dana Fox",
		AssignedTo: "Somebody Else",
	})
	assert.Error(t, err)

	job, err := Validate(model.VariantRick, model.CategoryCustom, Submission{
		JobID:      "C-RT-1010",
		Client:     "Dana Fox",
		AssignedTo: "CAD-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "CAD-2", job.AssignedTo)
}

func TestValidate_RepairsBindToBenchTeam(t *testing.T) {
	_, err := Validate(model.VariantRick, model.CategoryRepair, Submission{
		JobID:      "R-RT-2010",
		Client:     "Dana Fox",
		AssignedTo: "CAD-1",
	})
	assert.Error(t, err)
}

func TestValidate_FreeTextAssigneeInShopVariant(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:      "C-1012",
		Client:     "Sarah Mitchell",
		AssignedTo: "Marco",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marco", job.AssignedTo)
}

func TestValidate_ComplexityDefaultsPerCategory(t *testing.T) {
	custom, err := Validate(model.VariantRick, model.CategoryCustom, Submission{
		JobID: "C-RT-1011", Client: "Dana Fox", AssignedTo: "CAD-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComplexityMedium, custom.Complexity)

	repair, err := Validate(model.VariantRick, model.CategoryRepair, Submission{
		JobID: "R-RT-2011", Client: "Dana Fox", AssignedTo: "Bench-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComplexitySimple, repair.Complexity)
}

func TestValidate_ComplexityDroppedInShopVariant(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:      "C-1013",
		Client:     "Sarah Mitchell",
		Complexity: string(model.ComplexityComplex),
	})
	require.NoError(t, err)
	assert.Empty(t, job.Complexity)
}

func TestValidate_RepairTypeOnlyOnRepairs(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:      "C-1014",
		Client:     "Sarah Mitchell",
		RepairType: "Resizing",
	})
	require.NoError(t, err)
	assert.Empty(t, job.RepairType)

	job, err = Validate(model.VariantShop, model.CategoryRepair, Submission{
		JobID:      "R-2012",
		Client:     "Maria Lopez",
		RepairType: " Resizing ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Resizing", job.RepairType)
}

func TestValidate_DerivesBalanceFields(t *testing.T) {
	job, err := Validate(model.VariantShop, model.CategoryCustom, Submission{
		JobID:      "C-1015",
		Client:     "Sarah Mitchell",
		TotalPrice: "$1,200",
		Deposit:    "200",
	})
	require.NoError(t, err)

	assert.Equal(t, 1200.0, job.TotalPrice)
	assert.Equal(t, 200.0, job.DepositPaid)
	assert.Equal(t, 1000.0, job.RemainingBalance)
	assert.Equal(t, model.FlagNo, job.Paid)
}
