package engine

import (
	"time"

	"github.com/shelterlens-org/shelterlens/dataset"
)

// ============================================================================
// TEST FIXTURES
// ============================================================================

// rec builds a fully-derived record without going through the CSV parser.
func rec(species, intakeType, outcomeType string, year, stayDays int, live bool) dataset.Record {
	intake := time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC)
	return dataset.Record{
		Species:     species,
		IntakeType:  intakeType,
		OutcomeType: outcomeType,
		IntakeDate:  intake,
		OutcomeDate: intake.AddDate(0, 0, stayDays),
		StayDays:    stayDays,
		LiveOutcome: live,
		IntakeYear:  year,
		OutcomeYear: year,
	}
}

// sampleTable is the reference dataset: five records, four live outcomes,
// three DOGs, spanning 2021 and 2022.
func sampleTable() *dataset.Table {
	return dataset.New([]dataset.Record{
		rec("DOG", "STRAY", "ADOPTION", 2021, 10, true),
		rec("DOG", "OWNER SURRENDER", "ADOPTION", 2021, 20, true),
		rec("CAT", "STRAY", "TRANSFER", 2021, 5, true),
		rec("DOG", "SEIZED", "EUTHANASIA", 2022, 3, false),
		rec("CAT", "STRAY", "ADOPTION", 2022, 12, true),
	}, "sample")
}

func sampleView() View {
	return NewView(sampleTable())
}
