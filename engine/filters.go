package engine

import (
	"strconv"

	"github.com/shelterlens-org/shelterlens/dataset"
)

// ============================================================================
// FILTERS — selection-driven filtering with self-exclusion
// ============================================================================
// Single-pass filter: checks ALL active dimension constraints per record in
// one loop. Constraints are conjunctive equality checks, so composition is
// order-independent by construction. Dimensions in the ignore set are never
// constrained — that is how a chart shows the effect of every filter except
// its own while staying clickable.
// ============================================================================

// Filter returns the sub-view of v matching the selection, skipping any
// dimension in ignore. A dimension set to All is unconstrained. Pure: v and
// sel are unmodified. Returns an empty (never invalid) view on no match.
func Filter(v View, sel Selection, ignore DimensionSet) View {
	preds := buildPredicates(sel, ignore)
	if len(preds) == 0 {
		return v
	}

	n := v.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		rec := v.Record(i)
		pass := true
		for _, pred := range preds {
			if !pred(rec) {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	// Remap to table-level positions so nested sub-views stay flat.
	for i, idx := range indices {
		indices[i] = v.index(idx)
	}
	return v.subView(indices)
}

type predicate func(dataset.Record) bool

// buildPredicates resolves the selection into per-record checks, one per
// constrained, unignored dimension.
func buildPredicates(sel Selection, ignore DimensionSet) []predicate {
	preds := make([]predicate, 0, len(Dimensions))
	for _, d := range Dimensions {
		if ignore.Has(d) {
			continue
		}
		value := sel.Value(d)
		if value == All {
			continue
		}
		if p := dimensionPredicate(d, value); p != nil {
			preds = append(preds, p)
		}
	}
	return preds
}

func dimensionPredicate(d Dimension, value string) predicate {
	switch d {
	case Species:
		return func(r dataset.Record) bool { return r.Species == value }
	case IntakeType:
		return func(r dataset.Record) bool { return r.IntakeType == value }
	case Year:
		// Year clicks filter on intake year. A value that is not a year
		// (stale state from an unexpected click payload) constrains nothing
		// rather than matching nothing.
		y, err := strconv.Atoi(value)
		if err != nil {
			return nil
		}
		return func(r dataset.Record) bool { return r.IntakeYear == y }
	case OutcomeStatus:
		alive := value == Live
		return func(r dataset.Record) bool { return r.LiveOutcome == alive }
	case OutcomeType:
		return func(r dataset.Record) bool { return r.OutcomeType == value }
	}
	d.check()
	return nil
}
