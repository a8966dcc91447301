package engine

import "testing"

// ============================================================================
// FILTER TESTS
// ============================================================================

func TestFilterUnconstrainedReturnsAll(t *testing.T) {
	v := Filter(sampleView(), NewSelection(), 0)
	if v.Len() != 5 {
		t.Fatalf("all-All selection must match everything, got %d", v.Len())
	}
}

func TestFilterBySpecies(t *testing.T) {
	sel := NewSelection()
	sel.Species = "DOG"

	v := Filter(sampleView(), sel, 0)
	if v.Len() != 3 {
		t.Fatalf("expected 3 DOG records, got %d", v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if v.Record(i).Species != "DOG" {
			t.Fatalf("record %d is not a DOG: %+v", i, v.Record(i))
		}
	}
}

func TestFilterSelfExclusion(t *testing.T) {
	// The species chart ignores its own dimension: with species=DOG set,
	// its view still contains all 5 records.
	sel := NewSelection()
	sel.Species = "DOG"

	v := Filter(sampleView(), sel, NewDimensionSet(Species))
	if v.Len() != 5 {
		t.Fatalf("self-excluded view must ignore its own selection, got %d", v.Len())
	}
}

func TestFilterConjunction(t *testing.T) {
	sel := NewSelection()
	sel.Species = "CAT"
	sel.Year = "2021"

	v := Filter(sampleView(), sel, 0)
	if v.Len() != 1 {
		t.Fatalf("expected the single 2021 CAT, got %d", v.Len())
	}
	r := v.Record(0)
	if r.Species != "CAT" || r.IntakeYear != 2021 {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestFilterYearUsesIntakeYear(t *testing.T) {
	table := sampleTable()
	sel := NewSelection()
	sel.Year = "2022"

	v := Filter(NewView(table), sel, 0)
	if v.Len() != 2 {
		t.Fatalf("expected 2 records with 2022 intakes, got %d", v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if v.Record(i).IntakeYear != 2022 {
			t.Fatalf("record %d intake year: %d", i, v.Record(i).IntakeYear)
		}
	}
}

func TestFilterUnparseableYearConstrainsNothing(t *testing.T) {
	sel := NewSelection()
	sel.Year = "not-a-year"
	if v := Filter(sampleView(), sel, 0); v.Len() != 5 {
		t.Fatalf("stale year value must not constrain, got %d", v.Len())
	}
}

func TestFilterOutcomeStatus(t *testing.T) {
	sel := NewSelection()
	sel.OutcomeStatus = Live
	if v := Filter(sampleView(), sel, 0); v.Len() != 4 {
		t.Fatalf("expected 4 live records, got %d", v.Len())
	}

	sel.OutcomeStatus = NonLive
	v := Filter(sampleView(), sel, 0)
	if v.Len() != 1 || v.Record(0).OutcomeType != "EUTHANASIA" {
		t.Fatalf("expected the euthanasia record, got %d", v.Len())
	}
}

func TestFilterEmptyResultIsNotAnError(t *testing.T) {
	sel := NewSelection()
	sel.Species = "FERRET"

	v := Filter(sampleView(), sel, 0)
	if v.Len() != 0 {
		t.Fatalf("expected empty view, got %d", v.Len())
	}
	// An empty view still aggregates to a defined zero state.
	if k := Summarize(v); k != (KPIRecord{}) {
		t.Fatalf("empty view must summarize to zero: %+v", k)
	}
}

func TestFilterSubsetProperty(t *testing.T) {
	// Every record of the result satisfies all unignored predicates, and
	// the result is a subset of the input.
	base := sampleView()
	sel := NewSelection()
	sel.Species = "DOG"
	sel.OutcomeStatus = Live
	sel.Year = "2021"

	v := Filter(base, sel, NewDimensionSet(OutcomeType))
	if v.Len() > base.Len() {
		t.Fatal("filter result cannot exceed its input")
	}
	for i := 0; i < v.Len(); i++ {
		r := v.Record(i)
		if r.Species != "DOG" || !r.LiveOutcome || r.IntakeYear != 2021 {
			t.Fatalf("record %d violates a predicate: %+v", i, r)
		}
	}
}

func TestFilterComposesIndependentOfOrder(t *testing.T) {
	sel := NewSelection()
	sel.Species = "DOG"
	sel.Year = "2021"

	direct := Filter(sampleView(), sel, 0)

	bySpecies := NewSelection()
	bySpecies.Species = "DOG"
	byYear := NewSelection()
	byYear.Year = "2021"

	ab := Filter(Filter(sampleView(), bySpecies, 0), byYear, 0)
	ba := Filter(Filter(sampleView(), byYear, 0), bySpecies, 0)

	if direct.Len() != ab.Len() || ab.Len() != ba.Len() {
		t.Fatalf("composition order changed the result: %d / %d / %d",
			direct.Len(), ab.Len(), ba.Len())
	}
	for i := 0; i < direct.Len(); i++ {
		if direct.Record(i) != ab.Record(i) || ab.Record(i) != ba.Record(i) {
			t.Fatalf("record %d differs across compositions", i)
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	base := sampleView()
	before := make([]string, base.Len())
	for i := range before {
		before[i] = base.Record(i).Species
	}

	sel := NewSelection()
	sel.Species = "CAT"
	_ = Filter(base, sel, 0)

	for i := range before {
		if base.Record(i).Species != before[i] {
			t.Fatalf("input view mutated at record %d", i)
		}
	}
}
