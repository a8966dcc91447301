package engine

import "fmt"

// ============================================================================
// DIMENSIONS — the five filterable attributes
// ============================================================================
// A closed, tagged set rather than free-form string keys: an invalid
// dimension is a programming error and fails loudly, not a silent no-op.
// ============================================================================

// Dimension identifies one of the five filterable attributes.
type Dimension int

const (
	Species Dimension = iota
	IntakeType
	Year
	OutcomeStatus
	OutcomeType

	numDimensions
)

// Dimensions lists every dimension in display order.
var Dimensions = [...]Dimension{Species, IntakeType, Year, OutcomeStatus, OutcomeType}

var dimensionNames = [...]string{
	Species:       "species",
	IntakeType:    "intake_type",
	Year:          "year",
	OutcomeStatus: "outcome_status",
	OutcomeType:   "outcome_type",
}

// String returns the dimension's key. Panics on an invalid dimension.
func (d Dimension) String() string {
	d.check()
	return dimensionNames[d]
}

// check panics when d is outside the valid range — a contract violation,
// not a recoverable data condition.
func (d Dimension) check() {
	if d < 0 || d >= numDimensions {
		panic(fmt.Sprintf("engine: invalid dimension %d", int(d)))
	}
}

// ParseDimension resolves a dimension from its key. Unlike the panicking
// contract checks, this is for untrusted input (CLI flags, config) and
// returns an error. Short aliases match the chart names.
func ParseDimension(name string) (Dimension, error) {
	switch name {
	case "species":
		return Species, nil
	case "intake_type", "intake":
		return IntakeType, nil
	case "year":
		return Year, nil
	case "outcome_status", "status":
		return OutcomeStatus, nil
	case "outcome_type", "outcome":
		return OutcomeType, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", name)
}

// DimensionSet is a small set of dimensions, used to mark which dimensions
// a filter pass must ignore (a chart ignores its own).
type DimensionSet uint8

// NewDimensionSet builds a set from the given dimensions.
func NewDimensionSet(dims ...Dimension) DimensionSet {
	var s DimensionSet
	for _, d := range dims {
		d.check()
		s |= 1 << uint(d)
	}
	return s
}

// Has reports whether d is in the set.
func (s DimensionSet) Has(d Dimension) bool {
	d.check()
	return s&(1<<uint(d)) != 0
}
