package dataset

import "time"

// ============================================================================
// DATASET — Immutable shelter intake/outcome table
// ============================================================================
// Loaded (or generated) once at startup, then shared read-only by every
// concurrent chart computation. The engine reads records by index and never
// mutates them.
// ============================================================================

// Unknown is the fill value for missing or empty category fields.
const Unknown = "Unknown"

// SyntheticSource is the provenance marker for the generated fallback table.
const SyntheticSource = "synthetic"

// liveOutcomes classifies an outcome type as "left the shelter alive" when
// the source has no explicit outcome_is_alive column.
var liveOutcomes = map[string]bool{
	"ADOPTION":        true,
	"TRANSFER":        true,
	"RETURN TO OWNER": true,
	"RTOS":            true,
	"RELOCATE":        true,
}

// IsLiveOutcome reports whether an outcome type counts as a live release.
func IsLiveOutcome(outcomeType string) bool {
	return liveOutcomes[outcomeType]
}

// Record is a single intake/outcome event with its derived fields.
// A zero IntakeDate/OutcomeDate means the date is unknown; a zero
// IntakeYear/OutcomeYear likewise.
type Record struct {
	Species     string
	IntakeType  string
	OutcomeType string

	IntakeDate  time.Time
	OutcomeDate time.Time

	StayDays    int  // max(0, outcome − intake) in whole days; 0 when outcome absent
	LiveOutcome bool // from outcome_is_alive column, else derived from OutcomeType
	IntakeYear  int
	OutcomeYear int
}

// HasOutcome reports whether the animal's outcome has occurred.
func (r Record) HasOutcome() bool { return !r.OutcomeDate.IsZero() }

// Table is an ordered, immutable sequence of Records plus provenance.
type Table struct {
	records []Record
	source  string
}

// New wraps records into a Table. The slice is owned by the Table afterwards.
func New(records []Record, source string) *Table {
	return &Table{records: records, source: source}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Record returns the record at index i.
func (t *Table) Record(i int) Record { return t.records[i] }

// Source is where the table came from: a file path, or SyntheticSource.
func (t *Table) Source() string { return t.source }

// Synthetic reports whether the table is the generated fallback rather
// than real data.
func (t *Table) Synthetic() bool { return t.source == SyntheticSource }

// derive fills the computed fields of a record in place. Category fields
// must already be normalized.
func derive(r *Record, liveKnown bool) {
	if !r.IntakeDate.IsZero() {
		r.IntakeYear = r.IntakeDate.Year()
	}
	if !r.OutcomeDate.IsZero() {
		r.OutcomeYear = r.OutcomeDate.Year()
	}

	r.StayDays = 0
	if !r.IntakeDate.IsZero() && !r.OutcomeDate.IsZero() {
		days := int(r.OutcomeDate.Sub(r.IntakeDate).Hours() / 24)
		if days > 0 {
			r.StayDays = days
		}
	}

	if !liveKnown {
		r.LiveOutcome = IsLiveOutcome(r.OutcomeType)
	}
}
