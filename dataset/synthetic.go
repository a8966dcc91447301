package dataset

import (
	"math/rand"
	"time"
)

// ============================================================================
// SYNTHETIC FALLBACK — deterministic stand-in dataset
// ============================================================================
// Used whenever the CSV source is unavailable so the dashboard never shows
// an empty/missing-data state. Fixed seed, fixed distributions: every run
// produces the same table, and Table.Synthetic() marks it as generated.
// ============================================================================

// DefaultSyntheticRows is the size of the fallback table when not configured.
const DefaultSyntheticRows = 1000

const syntheticSeed = 42

var (
	syntheticStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	syntheticEnd   = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Synthetic generates the deterministic fallback table of n records
// (DefaultSyntheticRows when n <= 0). Intake dates are spread evenly across
// 2020–2023; outcomes follow 1–59 days later. Category distributions:
// species 50% DOG / 40% CAT / 5% BIRD / 5% OTHER, intake types uniform,
// outcome types 40% ADOPTION / 30% TRANSFER / 20% RETURN TO OWNER /
// 8% EUTHANASIA / 2% DIED.
func Synthetic(n int) *Table {
	if n <= 0 {
		n = DefaultSyntheticRows
	}
	rng := rand.New(rand.NewSource(syntheticSeed))

	span := syntheticEnd.Sub(syntheticStart)
	step := time.Duration(0)
	if n > 1 {
		step = span / time.Duration(n-1)
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		intake := syntheticStart.Add(step * time.Duration(i))
		outcome := intake.AddDate(0, 0, 1+rng.Intn(59))

		rec := Record{
			Species:     pick(rng, speciesChoices),
			IntakeType:  pick(rng, intakeChoices),
			OutcomeType: pick(rng, outcomeChoices),
			IntakeDate:  intake,
			OutcomeDate: outcome,
		}
		derive(&rec, false)
		records = append(records, rec)
	}

	return New(records, SyntheticSource)
}

type weightedChoice struct {
	value  string
	weight float64
}

var speciesChoices = []weightedChoice{
	{"DOG", 0.50},
	{"CAT", 0.40},
	{"BIRD", 0.05},
	{"OTHER", 0.05},
}

var intakeChoices = []weightedChoice{
	{"STRAY", 0.25},
	{"OWNER SURRENDER", 0.25},
	{"PUBLIC ASSIST", 0.25},
	{"SEIZED", 0.25},
}

var outcomeChoices = []weightedChoice{
	{"ADOPTION", 0.40},
	{"TRANSFER", 0.30},
	{"RETURN TO OWNER", 0.20},
	{"EUTHANASIA", 0.08},
	{"DIED", 0.02},
}

func pick(rng *rand.Rand, choices []weightedChoice) string {
	r := rng.Float64()
	for _, c := range choices {
		if r < c.weight {
			return c.value
		}
		r -= c.weight
	}
	return choices[len(choices)-1].value
}
