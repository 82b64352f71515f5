package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusesFor(t *testing.T) {
	assert.Len(t, StatusesFor(CategoryCustom), 9)
	assert.Len(t, StatusesFor(CategoryRepair), 6)

	assert.Equal(t, StatusConsultation, StatusesFor(CategoryCustom)[0])
	assert.Equal(t, StatusIntake, StatusesFor(CategoryRepair)[0])

	// Both pipelines end pickup then completed.
	custom := StatusesFor(CategoryCustom)
	repair := StatusesFor(CategoryRepair)
	assert.Equal(t, StatusReadyForPickup, custom[len(custom)-2])
	assert.Equal(t, StatusCompleted, custom[len(custom)-1])
	assert.Equal(t, StatusReadyForPickup, repair[len(repair)-2])
	assert.Equal(t, StatusCompleted, repair[len(repair)-1])
}

func TestValidStatus_PipelinesAreDisjointMidstream(t *testing.T) {
	assert.True(t, ValidStatus(CategoryCustom, StatusCasting))
	assert.False(t, ValidStatus(CategoryRepair, StatusCasting))

	assert.True(t, ValidStatus(CategoryRepair, StatusWaitingForParts))
	assert.False(t, ValidStatus(CategoryCustom, StatusWaitingForParts))

	// Shared terminal stages belong to both.
	assert.True(t, ValidStatus(CategoryCustom, StatusCompleted))
	assert.True(t, ValidStatus(CategoryRepair, StatusCompleted))

	assert.False(t, ValidStatus(CategoryCustom, Status("Engraving")))
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusConsultation, DefaultStatus(CategoryCustom))
	assert.Equal(t, StatusIntake, DefaultStatus(CategoryRepair))
}

func TestJob_SearchText(t *testing.T) {
	custom := Job{Category: CategoryCustom, JobID: "C-1", Client: "A", Item: "Ring", RepairType: "ignored"}
	assert.Equal(t, []string{"C-1", "A", "Ring"}, custom.SearchText())

	repair := Job{Category: CategoryRepair, JobID: "R-1", Client: "B", Item: "Chain", RepairType: "Solder"}
	assert.Equal(t, []string{"R-1", "B", "Chain", "Solder"}, repair.SearchText())
}
