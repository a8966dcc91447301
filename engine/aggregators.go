package engine

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shelterlens-org/shelterlens/dataset"
)

// ============================================================================
// AGGREGATORS — KPI summary, grouped counts, year trend
// ============================================================================
// All functions read through View — zero-copy, no mutation, safe to run
// concurrently over the same backing table.
// ============================================================================

// KPIRecord holds the summary statistics shown in the KPI panel.
type KPIRecord struct {
	Intakes         int     // total records in the subset
	Outcomes        int     // records whose outcome has occurred
	Adoptions       int     // outcome type ADOPTION
	LiveOutcomes    int     // records classified as live release
	AvgStayDays     float64 // mean stay duration across the subset
	LiveReleaseRate float64 // live outcomes / total outcomes × 100
}

// Summarize computes the KPIs over a view. An empty view yields the zero
// record — no division by zero, no error.
func Summarize(v View) KPIRecord {
	var k KPIRecord
	n := v.Len()
	if n == 0 {
		return k
	}

	var staySum int
	for i := 0; i < n; i++ {
		rec := v.Record(i)
		if rec.HasOutcome() {
			k.Outcomes++
		}
		if rec.OutcomeType == "ADOPTION" {
			k.Adoptions++
		}
		if rec.LiveOutcome {
			k.LiveOutcomes++
		}
		staySum += rec.StayDays
	}

	k.Intakes = n
	k.AvgStayDays = float64(staySum) / float64(n)
	if k.Outcomes > 0 {
		k.LiveReleaseRate = float64(k.LiveOutcomes) / float64(k.Outcomes) * 100
	}
	return k
}

// ============================================================================
// GROUPED COUNTS
// ============================================================================

// CategoryCount is one (category, count) pair of a grouped result.
type CategoryCount struct {
	Category string
	Count    int
}

// GroupCounts counts records per category of a dimension, sorted by
// descending count with ties in first-encountered order. limit <= 0 returns
// all categories. Grouping on Year uses the intake year and excludes records
// with an unknown year rather than coercing them to a sentinel.
func GroupCounts(v View, d Dimension, limit int) []CategoryCount {
	d.check()

	counts := make(map[string]int)
	var order []string
	for i := 0; i < v.Len(); i++ {
		key := categoryOf(v.Record(i), d)
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	result := make([]CategoryCount, 0, len(order))
	for _, key := range order {
		result = append(result, CategoryCount{Category: key, Count: counts[key]})
	}

	// Stable sort keeps first-encountered order on equal counts.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// categoryOf maps a record to its label on a dimension; "" means the record
// has no value there (unknown year) and is excluded from grouping.
func categoryOf(r dataset.Record, d Dimension) string {
	switch d {
	case Species:
		return r.Species
	case IntakeType:
		return r.IntakeType
	case Year:
		if r.IntakeYear != 0 {
			return strconv.Itoa(r.IntakeYear)
		}
		return ""
	case OutcomeStatus:
		if r.LiveOutcome {
			return Live
		}
		return NonLive
	case OutcomeType:
		return r.OutcomeType
	}
	d.check()
	return ""
}

// ============================================================================
// YEAR TREND
// ============================================================================

// YearCount is one year's record count in a trend series.
type YearCount struct {
	Year  int
	Count int
}

// TrendSeries counts records per intake year and per outcome year over the
// same view, each ascending by year. Records with an unknown year are
// excluded from the respective series.
func TrendSeries(v View) (intake, outcome []YearCount) {
	intakeCounts := make(map[int]int)
	outcomeCounts := make(map[int]int)
	for i := 0; i < v.Len(); i++ {
		rec := v.Record(i)
		if rec.IntakeYear != 0 {
			intakeCounts[rec.IntakeYear]++
		}
		if rec.OutcomeYear != 0 {
			outcomeCounts[rec.OutcomeYear]++
		}
	}
	return sortYearCounts(intakeCounts), sortYearCounts(outcomeCounts)
}

func sortYearCounts(counts map[int]int) []YearCount {
	result := make([]YearCount, 0, len(counts))
	for y, c := range counts {
		result = append(result, YearCount{Year: y, Count: c})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	return result
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
