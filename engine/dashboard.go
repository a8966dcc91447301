package engine

import (
	"fmt"
	"sync"

	"github.com/shelterlens-org/shelterlens/dataset"
)

// ============================================================================
// DASHBOARD FRAME — one full interaction cycle
// ============================================================================
// Entry point: BuildFrame(table, sel, opts...)
//
// Pipeline per chart: filter with the chart's own dimension ignored →
// aggregate → chart config. The KPI panel filters on every dimension. The
// six computations share only the immutable table and the already-finalized
// selection, so they run concurrently — each writes a distinct Frame field.
// ============================================================================

// Frame is everything the presentation layer needs to draw one state of the
// dashboard.
type Frame struct {
	Status string `json:"status"` // human-readable active-filter line
	Source string `json:"source"` // dataset provenance (path or "synthetic")

	KPIs  KPIRecord `json:"kpis"`
	Cards []KPICard `json:"cards"`

	SpeciesChart       *ChartConfig `json:"speciesChart"`
	IntakeTypeChart    *ChartConfig `json:"intakeTypeChart"`
	TrendChart         *ChartConfig `json:"trendChart"`
	OutcomeStatusChart *ChartConfig `json:"outcomeStatusChart"`
	OutcomeTypeChart   *ChartConfig `json:"outcomeTypeChart"`
}

// KPICard is one formatted KPI panel entry.
type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

const (
	cardAccent = "#c23b5a"
	cardGood   = "#198754"
)

// BuildFrame recomputes the KPI panel and all five charts for a selection.
// Each chart's view excludes the chart's own dimension, so it shows the
// effect of every other filter while remaining clickable to toggle its own.
func BuildFrame(t *dataset.Table, sel Selection, opts ...Option) *Frame {
	cfg := applyOptions(opts)
	base := NewView(t)

	frame := &Frame{
		Status: statusLine(sel),
		Source: t.Source(),
	}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() {
		kpiView := Filter(base, sel, 0)
		frame.KPIs = Summarize(kpiView)
		frame.Cards = kpiCards(frame.KPIs)
	})
	run(func() {
		v := Filter(base, sel, NewDimensionSet(Species))
		counts := GroupCounts(v, Species, 0)
		frame.SpeciesChart = BuildDonut("Intake Species Distribution", Species, counts, sel.Species)
	})
	run(func() {
		v := Filter(base, sel, NewDimensionSet(IntakeType))
		counts := GroupCounts(v, IntakeType, cfg.IntakeTopN)
		frame.IntakeTypeChart = BuildHBar("Intake Type Breakdown", IntakeType, counts, sel.IntakeType, colorPrimary)
	})
	run(func() {
		v := Filter(base, sel, NewDimensionSet(Year))
		intake, outcome := TrendSeries(v)
		frame.TrendChart = BuildTrend("Intake & Outcome Volume Over Time", intake, outcome, sel.Year)
	})
	run(func() {
		v := Filter(base, sel, NewDimensionSet(OutcomeStatus))
		counts := GroupCounts(v, OutcomeStatus, 0)
		frame.OutcomeStatusChart = BuildDonut("Live Outcomes Percentage", OutcomeStatus, counts, sel.OutcomeStatus)
	})
	run(func() {
		v := Filter(base, sel, NewDimensionSet(OutcomeType))
		counts := GroupCounts(v, OutcomeType, cfg.OutcomeTopN)
		frame.OutcomeTypeChart = BuildHBar("Outcomes Distribution", OutcomeType, counts, sel.OutcomeType, colorSuccess)
	})

	wg.Wait()
	return frame
}

// kpiCards formats the KPI panel the way the dashboard displays it.
func kpiCards(k KPIRecord) []KPICard {
	lrrColor := cardAccent
	if k.LiveReleaseRate > 90 {
		lrrColor = cardGood
	}
	return []KPICard{
		{Label: "Total Intakes", Value: FormatInt(k.Intakes), Color: cardAccent},
		{Label: "Total Outcomes", Value: FormatInt(k.Outcomes), Color: cardAccent},
		{Label: "Avg Length of Stay", Value: fmt.Sprintf("%.1f days", k.AvgStayDays), Color: cardAccent},
		{Label: "Total Adoptions", Value: FormatInt(k.Adoptions), Color: cardAccent},
		{Label: "Live Release Rate", Value: fmt.Sprintf("%.1f%%", k.LiveReleaseRate), Color: lrrColor},
	}
}

func statusLine(sel Selection) string {
	return fmt.Sprintf("Species: %s | Intake: %s | Year: %s | Status: %s | Outcome: %s",
		sel.Species, sel.IntakeType, sel.Year, sel.OutcomeStatus, sel.OutcomeType)
}
