package model

// Status is a record's position in its category's pipeline. The stage
// lists are totally ordered but transitions are free: any status may be
// set to any other.
type Status string

// Custom pipeline stages, in order.
const (
	StatusConsultation   Status = "Consultation"
	StatusDesignSketch   Status = "Design Sketch"
	StatusCADModeling    Status = "CAD Modeling"
	Status3DApproval     Status = "3D Approval"
	StatusCasting        Status = "Casting"
	StatusStoneSetting   Status = "Stone Setting"
	StatusFinalPolish    Status = "Final Polish"
	StatusReadyForPickup Status = "Ready for Pickup"
	StatusCompleted      Status = "Completed"
)

// Repair pipeline stages, in order. Ready-for-pickup and completed are
// shared with the custom pipeline.
const (
	StatusIntake          Status = "Intake"
	StatusWaitingForParts Status = "Waiting for Parts"
	StatusInProgress      Status = "In Progress"
	StatusQualityCheck    Status = "Quality Check"
)

// CustomStatuses is the ordered custom pipeline (consultation through
// pickup).
var CustomStatuses = []Status{
	StatusConsultation,
	StatusDesignSketch,
	StatusCADModeling,
	Status3DApproval,
	StatusCasting,
	StatusStoneSetting,
	StatusFinalPolish,
	StatusReadyForPickup,
	StatusCompleted,
}

// RepairStatuses is the ordered repair pipeline (intake through pickup).
var RepairStatuses = []Status{
	StatusIntake,
	StatusWaitingForParts,
	StatusInProgress,
	StatusQualityCheck,
	StatusReadyForPickup,
	StatusCompleted,
}

// StatusesFor returns the ordered stage list for a category.
func StatusesFor(c Category) []Status {
	if c == CategoryRepair {
		return RepairStatuses
	}
	return CustomStatuses
}

// ValidStatus reports whether s belongs to the category's stage list.
func ValidStatus(c Category, s Status) bool {
	for _, known := range StatusesFor(c) {
		if s == known {
			return true
		}
	}
	return false
}

// DefaultStatus returns the first stage of the category's pipeline.
func DefaultStatus(c Category) Status {
	return StatusesFor(c)[0]
}
