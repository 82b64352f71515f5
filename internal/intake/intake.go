// Package intake validates new-record submissions before they are
// admitted to a store. Validation is pure construction: the caller
// decides whether the resulting job actually enters the collection.
package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rterry/jewelboard/internal/derive"
	"github.com/rterry/jewelboard/internal/model"
)

// Submission carries the raw field values from the add-job form. All
// values arrive as text; numeric and date fields are coerced, never
// rejected.
type Submission struct {
	JobID      string `validate:"required"`
	Client     string `validate:"required"`
	Item       string
	RepairType string
	AssignedTo string
	Complexity string
	Status     string
	IntakeDate string
	TargetDate string
	TotalPrice string
	Deposit    string
	Notes      string
}

// ValidationError reports the fields that failed intake validation.
// The submission is rejected as a whole; no partial record is created.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission: %s required", strings.Join(e.Fields, ", "))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalizes a submission into a job record for the given
// variant and category. It fails only on missing required fields or an
// out-of-domain status/assignee/complexity; bad numbers and dates are
// silently coerced per the forgiving data-entry contract.
func Validate(v model.Variant, c model.Category, sub Submission) (model.Job, error) {
	trimmed := sub
	trimmed.JobID = strings.TrimSpace(sub.JobID)
	trimmed.Client = strings.TrimSpace(sub.Client)

	if err := validate.Struct(trimmed); err != nil {
		verr := &ValidationError{}
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				verr.Fields = append(verr.Fields, fieldLabel(fe.Field()))
			}
			return model.Job{}, verr
		}
		return model.Job{}, fmt.Errorf("validating submission: %w", err)
	}

	status := model.Status(strings.TrimSpace(sub.Status))
	if status == "" {
		status = model.DefaultStatus(c)
	}
	if !model.ValidStatus(c, status) {
		return model.Job{}, fmt.Errorf("status %q is not a %s stage", status, c)
	}

	assigned := strings.TrimSpace(sub.AssignedTo)
	if roster := model.RosterFor(v, c); !model.OnRoster(roster, assigned) {
		return model.Job{}, fmt.Errorf("%q is not on the roster", assigned)
	}

	complexity := model.Complexity(strings.TrimSpace(sub.Complexity))
	if v.HasComplexity() {
		if complexity == "" {
			complexity = defaultComplexity(c)
		}
		if !model.ValidComplexity(complexity) {
			return model.Job{}, fmt.Errorf("unknown complexity %q", complexity)
		}
	} else {
		complexity = ""
	}

	intakeDate := strings.TrimSpace(sub.IntakeDate)
	if intakeDate == "" {
		intakeDate = time.Now().Format("2006-01-02")
	}

	job := model.Job{
		Category:    c,
		JobID:       trimmed.JobID,
		Client:      trimmed.Client,
		Item:        strings.TrimSpace(sub.Item),
		AssignedTo:  assigned,
		Complexity:  complexity,
		Status:      status,
		IntakeDate:  intakeDate,
		TargetDate:  strings.TrimSpace(sub.TargetDate),
		TotalPrice:  derive.ParseAmount(sub.TotalPrice),
		DepositPaid: derive.ParseAmount(sub.Deposit),
		Notes:       strings.TrimSpace(sub.Notes),
	}
	if c == model.CategoryRepair {
		job.RepairType = strings.TrimSpace(sub.RepairType)
	}

	derive.Recompute(&job, time.Now())
	return job, nil
}

// defaultComplexity mirrors the add-form defaults: repairs start simple,
// customs start medium.
func defaultComplexity(c model.Category) model.Complexity {
	if c == model.CategoryRepair {
		return model.ComplexitySimple
	}
	return model.ComplexityMedium
}

// fieldLabel maps struct field names to the labels shown to the user.
func fieldLabel(name string) string {
	switch name {
	case "JobID":
		return "Job ID"
	case "Client":
		return "Client"
	default:
		return name
	}
}
