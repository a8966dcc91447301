package engine

// ============================================================================
// SELECTION — per-session cross-filter state + update rule
// ============================================================================
// An explicit value passed into and returned from Apply — no ambient store.
// Each dimension holds either the All sentinel or a concrete value; the year
// is stored as the decimal string of the intake year so toggle comparison
// and the sentinel stay uniform across dimensions.
// ============================================================================

// All is the sentinel meaning a dimension is unconstrained.
const All = "All"

// Live / NonLive are the two outcome_status values.
const (
	Live    = "Live"
	NonLive = "Non-Live"
)

// Selection maps each dimension to its chosen value. The zero value is NOT
// valid — use NewSelection.
type Selection struct {
	Species       string
	IntakeType    string
	Year          string
	OutcomeStatus string
	OutcomeType   string
}

// NewSelection returns the unconstrained selection (every dimension All).
func NewSelection() Selection {
	return Selection{
		Species:       All,
		IntakeType:    All,
		Year:          All,
		OutcomeStatus: All,
		OutcomeType:   All,
	}
}

// Value returns the current value for a dimension.
func (s Selection) Value(d Dimension) string {
	switch d {
	case Species:
		return s.Species
	case IntakeType:
		return s.IntakeType
	case Year:
		return s.Year
	case OutcomeStatus:
		return s.OutcomeStatus
	case OutcomeType:
		return s.OutcomeType
	}
	d.check()
	return ""
}

// with returns a copy of s with one dimension replaced.
func (s Selection) with(d Dimension, value string) Selection {
	switch d {
	case Species:
		s.Species = value
	case IntakeType:
		s.IntakeType = value
	case Year:
		s.Year = value
	case OutcomeStatus:
		s.OutcomeStatus = value
	case OutcomeType:
		s.OutcomeType = value
	default:
		d.check()
	}
	return s
}

// Active reports whether any dimension is constrained.
func (s Selection) Active() bool {
	for _, d := range Dimensions {
		if s.Value(d) != All {
			return true
		}
	}
	return false
}

// ============================================================================
// EVENTS — user interactions
// ============================================================================

// Event is a user interaction: a reset, or a click on a chart element.
type Event struct {
	reset bool
	dim   Dimension
	value string
}

// Reset clears every dimension back to All.
func Reset() Event {
	return Event{reset: true}
}

// ChartClick toggles a dimension's value: clicking the current value clears
// it, clicking another value replaces it. An empty value (a click on empty
// chart space) leaves the selection unchanged.
func ChartClick(d Dimension, value string) Event {
	d.check()
	return Event{dim: d, value: value}
}

// Apply computes the next selection from an event. Pure: s is unmodified.
func Apply(ev Event, s Selection) Selection {
	if ev.reset {
		return NewSelection()
	}
	if ev.value == "" {
		return s
	}
	if ev.value == s.Value(ev.dim) {
		return s.with(ev.dim, All)
	}
	return s.with(ev.dim, ev.value)
}
