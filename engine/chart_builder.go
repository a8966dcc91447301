package engine

import "strconv"

// ============================================================================
// CHART BUILDER — render-ready chart configs
// ============================================================================
// The engine does not render. It hands the presentation layer a ChartConfig:
// series data, highlight state, and palette. A chart built from an empty
// subset carries NoData so the caller can show a defined "no data" state
// instead of failing.
// ============================================================================

// ChartConfig defines how to render one dashboard chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "donut", "hbar", "line"
	Title      string        `json:"title"`
	Dimension  string        `json:"dimension,omitempty"` // which dimension a click on this chart toggles
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	Selected   string        `json:"selected,omitempty"` // highlighted category, "" when none
	ShowLegend bool          `json:"showLegend"`
	NoData     bool          `json:"noData,omitempty"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Palette lifted from the dashboard styling.
const (
	colorPrimary = "#0d6efd" // intake bars, intake trend line
	colorSuccess = "#198754" // outcome bars, outcome trend line
	colorLive    = "#28a745"
	colorNonLive = "#6c757d"
	colorMuted   = "#e9ecef" // greyed-out unselected bars
)

var donutColors = []string{
	"#66c5cc", "#f6cf71", "#f89c74", "#dcb0f2", "#87c55f",
	"#9eb9f3", "#fe88b1", "#c9db74", "#8be0a4", "#b497e7",
}

// BuildDonut produces a donut chart of grouped counts with the selected
// slice marked for pull-out highlighting.
func BuildDonut(title string, d Dimension, counts []CategoryCount, selected string) *ChartConfig {
	if len(counts) == 0 {
		return noDataChart("donut", title, d)
	}

	points := make([]ChartPoint, 0, len(counts))
	colors := make([]string, 0, len(counts))
	for i, c := range counts {
		points = append(points, ChartPoint{Label: c.Category, Value: float64(c.Count)})
		colors = append(colors, donutColors[i%len(donutColors)])
	}
	// Live/Non-Live keeps its fixed status colors.
	if d == OutcomeStatus {
		colors = colors[:0]
		for _, c := range counts {
			if c.Category == Live {
				colors = append(colors, colorLive)
			} else {
				colors = append(colors, colorNonLive)
			}
		}
	}

	return &ChartConfig{
		ChartType: "donut",
		Title:     title,
		Dimension: d.String(),
		Series:    []ChartSeries{{Name: title, Data: points}},
		Colors:    colors,
		Selected:  highlight(selected),
	}
}

// BuildHBar produces a horizontal bar chart of grouped counts. Unselected
// bars are greyed out when a selection is active on this chart's dimension.
func BuildHBar(title string, d Dimension, counts []CategoryCount, selected string, barColor string) *ChartConfig {
	if len(counts) == 0 {
		return noDataChart("hbar", title, d)
	}

	points := make([]ChartPoint, 0, len(counts))
	colors := make([]string, 0, len(counts))
	for _, c := range counts {
		points = append(points, ChartPoint{Label: c.Category, Value: float64(c.Count)})
		if selected == All || selected == "" || c.Category == selected {
			colors = append(colors, barColor)
		} else {
			colors = append(colors, colorMuted)
		}
	}

	return &ChartConfig{
		ChartType: "hbar",
		Title:     title,
		Dimension: d.String(),
		Series:    []ChartSeries{{Name: title, Data: points, Color: barColor}},
		Colors:    colors,
		Selected:  highlight(selected),
	}
}

// BuildTrend produces the intake/outcome volume line chart, one series per
// year axis over the same subset.
func BuildTrend(title string, intake, outcome []YearCount, selected string) *ChartConfig {
	if len(intake) == 0 && len(outcome) == 0 {
		return noDataChart("line", title, Year)
	}

	return &ChartConfig{
		ChartType: "line",
		Title:     title,
		Dimension: Year.String(),
		Series: []ChartSeries{
			{Name: "Outcome", Data: yearPoints(outcome), Color: colorSuccess},
			{Name: "Intake", Data: yearPoints(intake), Color: colorPrimary},
		},
		Selected:   highlight(selected),
		ShowLegend: true,
	}
}

func yearPoints(series []YearCount) []ChartPoint {
	points := make([]ChartPoint, 0, len(series))
	for _, yc := range series {
		points = append(points, ChartPoint{Label: strconv.Itoa(yc.Year), Value: float64(yc.Count)})
	}
	return points
}

func noDataChart(chartType, title string, d Dimension) *ChartConfig {
	return &ChartConfig{
		ChartType: chartType,
		Title:     title,
		Dimension: d.String(),
		Series:    []ChartSeries{},
		NoData:    true,
	}
}

// highlight turns the All sentinel into "no highlight".
func highlight(selected string) string {
	if selected == All {
		return ""
	}
	return selected
}
