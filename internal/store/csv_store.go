package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rterry/jewelboard/internal/derive"
	"github.com/rterry/jewelboard/internal/model"
)

// JobStore owns the authoritative job collection for one category,
// backed by a row-oriented CSV file. It is single-session: no locking,
// no concurrent writers. Saves replace the whole file.
type JobStore struct {
	path     string
	variant  model.Variant
	category model.Category
	jobs     []model.Job
}

// Open loads the store from path, or seeds it with the single demo
// record for the category when the file does not exist. The seed is
// persisted before Open returns. Derived columns are recomputed on
// every load.
func Open(path string, v model.Variant, c model.Category) (*JobStore, error) {
	s := &JobStore{path: path, variant: v, category: c}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.jobs = []model.Job{seedJob(v, c)}
		derive.RecomputeAll(s.jobs, time.Now())
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", path, err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	jobs, err := parseCSV(raw, c)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	derive.RecomputeAll(jobs, time.Now())
	s.jobs = jobs
	return s, nil
}

// Path returns the backing file path.
func (s *JobStore) Path() string { return s.path }

// Category returns the store's job category.
func (s *JobStore) Category() model.Category { return s.category }

// Jobs returns a copy of the collection. Callers transform the copy and
// hand it back through Replace; they never hold a live reference.
func (s *JobStore) Jobs() []model.Job {
	out := make([]model.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Len returns the number of records.
func (s *JobStore) Len() int { return len(s.jobs) }

// Replace swaps in a new authoritative collection, recomputes the
// derived columns and saves the whole file.
func (s *JobStore) Replace(jobs []model.Job) error {
	derive.RecomputeAll(jobs, time.Now())
	s.jobs = jobs
	return s.save()
}

// Add appends a record and saves.
func (s *JobStore) Add(j model.Job) error {
	return s.Replace(append(s.Jobs(), j))
}

// Update overwrites the record at index and saves.
func (s *JobStore) Update(index int, j model.Job) error {
	if index < 0 || index >= len(s.jobs) {
		return fmt.Errorf("job index %d out of range", index)
	}
	jobs := s.Jobs()
	jobs[index] = j
	return s.Replace(jobs)
}

// Reset deletes the backing file and re-seeds the single demo record,
// discarding all prior records irrecoverably.
func (s *JobStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", s.path, err)
	}
	s.jobs = []model.Job{seedJob(s.variant, s.category)}
	derive.RecomputeAll(s.jobs, time.Now())
	return s.save()
}

// Export serializes the current collection as CSV bytes, suitable for
// a user-initiated download.
func (s *JobStore) Export() ([]byte, error) {
	return marshalCSV(s.jobs, s.variant, s.category)
}

// save overwrites the backing file via a temp file and rename so a
// crash mid-write cannot leave a half-written file behind.
func (s *JobStore) save() error {
	data, err := marshalCSV(s.jobs, s.variant, s.category)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Columns returns the persisted column headers, in table order, for a
// variant and category. Historical files missing some of these columns
// still load; absent fields come back as empty strings.
func Columns(v model.Variant, c model.Category) []string {
	switch {
	case v == model.VariantRick && c == model.CategoryCustom:
		return []string{
			"Job_ID", "Client", "Item", "Phase_Owner", "Complexity",
			"Status", "Intake_Date", "Due_Date",
			"Total_Price", "Deposit_Paid", "Remaining_Balance",
			"Paid", "Overdue", "Notes",
		}
	case v == model.VariantRick && c == model.CategoryRepair:
		return []string{
			"Job_ID", "Client", "Item", "Repair_Type", "Assigned_To",
			"Complexity", "Status", "Intake_Date", "Promised_Date",
			"Total_Price", "Deposit_Paid", "Remaining_Balance",
			"Paid", "Overdue", "Notes",
		}
	case c == model.CategoryRepair:
		return []string{
			"Job_ID", "Client", "Item", "Repair_Type", "Assigned_To",
			"Status", "Intake_Date", "Est_Completion",
			"Total_Price", "Deposit_Paid", "Remaining_Balance",
			"Paid", "Notes",
		}
	default:
		return []string{
			"Job_ID", "Client", "Item", "Assigned_To",
			"Status", "Intake_Date", "Due_Date",
			"Total_Price", "Deposit_Paid", "Remaining_Balance",
			"Paid", "Notes",
		}
	}
}

// columnValue reads the named column from a job.
func columnValue(j model.Job, col string) string {
	switch col {
	case "Job_ID":
		return j.JobID
	case "Client":
		return j.Client
	case "Item":
		return j.Item
	case "Repair_Type":
		return j.RepairType
	case "Assigned_To", "Phase_Owner":
		return j.AssignedTo
	case "Complexity":
		return string(j.Complexity)
	case "Status":
		return string(j.Status)
	case "Intake_Date":
		return j.IntakeDate
	case "Due_Date", "Est_Completion", "Promised_Date":
		return j.TargetDate
	case "Total_Price":
		return formatAmount(j.TotalPrice)
	case "Deposit_Paid":
		return formatAmount(j.DepositPaid)
	case "Remaining_Balance":
		return formatAmount(j.RemainingBalance)
	case "Paid":
		return j.Paid
	case "Overdue":
		return j.Overdue
	case "Notes":
		return j.Notes
	default:
		return ""
	}
}

// setColumn writes the named column into a job. Unknown columns are
// ignored so old files with extra columns still load.
func setColumn(j *model.Job, col, value string) {
	switch col {
	case "Job_ID":
		j.JobID = value
	case "Client":
		j.Client = value
	case "Item":
		j.Item = value
	case "Repair_Type":
		j.RepairType = value
	case "Assigned_To", "Phase_Owner":
		j.AssignedTo = value
	case "Complexity":
		j.Complexity = model.Complexity(value)
	case "Status":
		j.Status = model.Status(value)
	case "Intake_Date":
		j.IntakeDate = value
	case "Due_Date", "Est_Completion", "Promised_Date":
		j.TargetDate = value
	case "Total_Price":
		j.TotalPrice = derive.ParseAmount(value)
	case "Deposit_Paid":
		j.DepositPaid = derive.ParseAmount(value)
	case "Remaining_Balance":
		j.RemainingBalance = derive.ParseAmount(value)
	case "Paid":
		j.Paid = value
	case "Overdue":
		j.Overdue = value
	case "Notes":
		j.Notes = value
	}
}

// parseCSV decodes file bytes into jobs. Header names are trimmed of
// whitespace before matching.
func parseCSV(raw []byte, c model.Category) ([]model.Job, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decoding csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	jobs := make([]model.Job, 0, len(rows)-1)
	for _, row := range rows[1:] {
		j := model.Job{Category: c}
		for i, col := range header {
			if i < len(row) {
				setColumn(&j, col, row[i])
			}
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// marshalCSV encodes jobs with the canonical column set for the
// variant and category.
func marshalCSV(jobs []model.Job, v model.Variant, c model.Category) ([]byte, error) {
	cols := Columns(v, c)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(cols); err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	row := make([]string, len(cols))
	for _, j := range jobs {
		for i, col := range cols {
			row[i] = columnValue(j, col)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encoding row for job %s: %w", j.JobID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding csv: %w", err)
	}
	return buf.Bytes(), nil
}

// formatAmount renders a money value without trailing zeros.
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// seedJob builds the single demo record used when a store's backing
// file is missing.
func seedJob(v model.Variant, c model.Category) model.Job {
	today := time.Now().Format("2006-01-02")

	switch {
	case v == model.VariantRick && c == model.CategoryCustom:
		return model.Job{
			Category:    c,
			JobID:       "C-RT-1001",
			Client:      "Example Client",
			Item:        "Custom engagement ring",
			AssignedTo:  "CAD-1",
			Complexity:  model.ComplexityMedium,
			Status:      model.StatusCADModeling,
			IntakeDate:  today,
			TargetDate:  today,
			TotalPrice:  2500,
			DepositPaid: 500,
			Notes:       "Demo record",
		}
	case v == model.VariantRick && c == model.CategoryRepair:
		return model.Job{
			Category:    c,
			JobID:       "R-RT-2001",
			Client:      "Example Client",
			Item:        "Ring",
			RepairType:  "Resizing",
			AssignedTo:  "Bench-1",
			Complexity:  model.ComplexitySimple,
			Status:      model.StatusIntake,
			IntakeDate:  today,
			TotalPrice:  150,
			DepositPaid: 0,
			Notes:       "Demo record",
		}
	case c == model.CategoryRepair:
		return model.Job{
			Category:    c,
			JobID:       "R-2001",
			Client:      "Example Client",
			Item:        "Ring",
			RepairType:  "Resizing",
			AssignedTo:  "Bench",
			Status:      model.StatusIntake,
			IntakeDate:  today,
			TotalPrice:  120,
			DepositPaid: 0,
			Notes:       "Demo record",
		}
	default:
		return model.Job{
			Category:    c,
			JobID:       "C-1001",
			Client:      "Example Client",
			Item:        "Engagement ring",
			AssignedTo:  "CAD Team",
			Status:      model.StatusConsultation,
			IntakeDate:  today,
			TotalPrice:  1200,
			DepositPaid: 200,
			Notes:       "Demo record",
		}
	}
}
