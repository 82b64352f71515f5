package model

// Category identifies which of the two pipelines a job belongs to.
type Category string

const (
	CategoryCustom Category = "custom"
	CategoryRepair Category = "repair"
)

// Flag values used for the derived Paid and Overdue columns. They are
// stored as text so they round-trip through the CSV files unchanged.
const (
	FlagYes = "Yes"
	FlagNo  = "No"
)

// Job is a single record in either the custom or the repair pipeline.
//
// TotalPrice, DepositPaid and the date columns are kept exactly as they
// appear in the backing file; RemainingBalance, Paid and Overdue are
// derived and overwritten on every recompute pass, never authoritative
// on their own.
type Job struct {
	// Category the record belongs to. Not persisted; implied by which
	// file the record was loaded from.
	Category Category

	// JobID is the user-supplied identifier. Required, but uniqueness
	// is not enforced.
	JobID string

	// Client is the customer name. Required.
	Client string

	// Item describes the piece (free text).
	Item string

	// RepairType is free text, repair jobs only.
	RepairType string

	// AssignedTo is who currently owns the job. For rick-variant custom
	// jobs this is the phase owner (CAD or bench); for repairs it is a
	// bench member. Free text in the shop variant.
	AssignedTo string

	// Complexity is set in the rick variant only; empty otherwise.
	Complexity Complexity

	// Status is the record's position in its category's pipeline.
	Status Status

	// IntakeDate is the ISO date the job was created.
	IntakeDate string

	// TargetDate is the date the overdue computation runs against:
	// due date for customs, estimated completion / promised date for
	// repairs. Empty when no date was given; kept verbatim even when it
	// does not parse.
	TargetDate string

	TotalPrice  float64
	DepositPaid float64

	// RemainingBalance is derived: max(0, TotalPrice-DepositPaid).
	RemainingBalance float64

	// Paid is derived: FlagYes iff RemainingBalance == 0.
	Paid string

	// Overdue is derived: FlagYes iff the job is not completed and
	// TargetDate parses to a date strictly before today.
	Overdue string

	Notes string
}

// IsCompleted reports whether the job sits in the terminal stage.
func (j Job) IsCompleted() bool {
	return j.Status == StatusCompleted
}

// SearchText returns the fields the free-text filter matches against.
func (j Job) SearchText() []string {
	fields := []string{j.JobID, j.Client, j.Item}
	if j.Category == CategoryRepair {
		fields = append(fields, j.RepairType)
	}
	return fields
}
