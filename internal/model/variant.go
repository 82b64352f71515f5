package model

// Variant selects which edition of the dashboard is running. The shop
// variant is the generic demo; the rick variant adds phase ownership,
// complexity ratings and overdue tracking for the Rick Terry store.
type Variant string

const (
	VariantShop Variant = "shop"
	VariantRick Variant = "rick"
)

// Complexity is the rick-variant effort rating. The labels are stored
// verbatim in the CSV files.
type Complexity string

const (
	ComplexitySimple  Complexity = "S (Simple)"
	ComplexityMedium  Complexity = "M (Medium)"
	ComplexityComplex Complexity = "L (Complex)"
)

// Complexities lists all complexity levels in ascending effort order.
var Complexities = []Complexity{
	ComplexitySimple,
	ComplexityMedium,
	ComplexityComplex,
}

// ValidComplexity reports whether c is one of the known levels.
func ValidComplexity(c Complexity) bool {
	for _, known := range Complexities {
		if c == known {
			return true
		}
	}
	return false
}

// Rick-variant staff rosters. Custom jobs may be owned by anyone;
// repairs are assigned from the bench roster only.
var (
	CADTeam   = []string{"CAD-1", "CAD-2", "CAD-3"}
	BenchTeam = []string{"Bench-1", "Bench-2", "Bench-3", "Bench-4"}
	FrontDesk = []string{"Front Desk"}
)

// AllAssignees is the full rick roster in display order.
func AllAssignees() []string {
	roster := make([]string, 0, len(CADTeam)+len(BenchTeam)+len(FrontDesk))
	roster = append(roster, CADTeam...)
	roster = append(roster, BenchTeam...)
	roster = append(roster, FrontDesk...)
	return roster
}

// RosterFor returns the allowed assignees for a category in the rick
// variant, or nil for the shop variant where assignment is free text.
func RosterFor(v Variant, c Category) []string {
	if v != VariantRick {
		return nil
	}
	if c == CategoryRepair {
		return BenchTeam
	}
	return AllAssignees()
}

// OnRoster reports whether name is a member of roster. An empty roster
// (shop variant) accepts any name.
func OnRoster(roster []string, name string) bool {
	if len(roster) == 0 {
		return true
	}
	for _, member := range roster {
		if member == name {
			return true
		}
	}
	return false
}

// HasOverdue reports whether the variant tracks the overdue flag in its
// persisted files. Both variants compute it in memory.
func (v Variant) HasOverdue() bool {
	return v == VariantRick
}

// HasComplexity reports whether the variant carries complexity ratings.
func (v Variant) HasComplexity() bool {
	return v == VariantRick
}

// TargetDateLabel is the display name of the overdue-basis date column
// for the given category.
func (v Variant) TargetDateLabel(c Category) string {
	if c == CategoryCustom {
		return "Due_Date"
	}
	if v == VariantRick {
		return "Promised_Date"
	}
	return "Est_Completion"
}
