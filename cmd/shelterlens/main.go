package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shelterlens-org/shelterlens/config"
	"github.com/shelterlens-org/shelterlens/dataset"
	"github.com/shelterlens-org/shelterlens/engine"
)

// ============================================================================
// SHELTERLENS CLI — Shelter operations dashboard, headless
// ============================================================================
// The presentation collaborator: loads the dataset, replays a click script
// through the selection rule, and emits the resulting dashboard frame.
// ============================================================================

const version = "1.0.0"

// clickList collects repeatable --click dim=value flags in order.
type clickList []string

func (c *clickList) String() string { return strings.Join(*c, ",") }

func (c *clickList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func main() {
	filePath := flag.String("file", "", "Path to shelter CSV (overrides config data_path)")
	format := flag.String("format", "json", "Output format: json, pretty, text")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	reset := flag.Bool("reset", false, "Apply a reset event after the click script")
	showVersion := flag.Bool("version", false, "Print version and exit")

	var clicks clickList
	flag.Var(&clicks, "click", "Chart click as dim=value (repeatable, applied in order)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Shelterlens — cross-filter analytics for shelter operations

Usage:
  shelterlens --file shelter.csv
  shelterlens --file shelter.csv --click species=DOG --click year=2021 --format text
  shelterlens --click species=DOG --click species=DOG   # toggle back to All

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Dimensions:
  species, intake_type (intake), year, outcome_status (status), outcome_type (outcome)

Environment:
  CONFIG_PATH                Config file location (default config.yaml)
  SHELTERLENS_DATA_PATH      Override the dataset path
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("shelterlens %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}

	path := cfg.DataPath
	if *filePath != "" {
		path = *filePath
	}

	table := dataset.Load(path, dataset.WithSyntheticRows(cfg.SyntheticRows))
	if table.Synthetic() {
		log.Printf("🐾 Shelterlens: using synthetic dataset (%d records)", table.Len())
	} else {
		log.Printf("🐾 Shelterlens: loaded %d records from %s", table.Len(), table.Source())
	}

	// ── Replay the event script ───────────────────────────────────────────
	sel := engine.NewSelection()
	for _, c := range clicks {
		ev, err := parseClick(c)
		if err != nil {
			fatalf("Bad --click %q: %v", c, err)
		}
		sel = engine.Apply(ev, sel)
	}
	if *reset {
		sel = engine.Apply(engine.Reset(), sel)
	}

	frame := engine.BuildFrame(table, sel,
		engine.WithIntakeTopN(cfg.IntakeTopN),
		engine.WithOutcomeTopN(cfg.OutcomeTopN),
	)

	// ── Output ────────────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(writer)
		if err := enc.Encode(frame); err != nil {
			fatalf("Failed to encode frame: %v", err)
		}
	case "pretty":
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(frame); err != nil {
			fatalf("Failed to encode frame: %v", err)
		}
	case "text":
		writeText(writer, cfg.Title, frame)
	default:
		fatalf("Unknown format %q (want json, pretty, or text)", *format)
	}
}

// parseClick turns "species=DOG" into a ChartClick event.
func parseClick(s string) (engine.Event, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return engine.Event{}, fmt.Errorf("want dim=value")
	}
	dim, err := engine.ParseDimension(strings.TrimSpace(name))
	if err != nil {
		return engine.Event{}, err
	}
	return engine.ChartClick(dim, strings.TrimSpace(value)), nil
}

// writeText renders a frame as a human-readable summary.
func writeText(w *os.File, title string, frame *engine.Frame) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "Filters: %s\n", frame.Status)
	fmt.Fprintf(w, "Source: %s\n\n", frame.Source)

	for _, card := range frame.Cards {
		fmt.Fprintf(w, "  %-20s %s\n", card.Label, card.Value)
	}

	charts := []*engine.ChartConfig{
		frame.SpeciesChart,
		frame.IntakeTypeChart,
		frame.TrendChart,
		frame.OutcomeStatusChart,
		frame.OutcomeTypeChart,
	}
	for _, chart := range charts {
		fmt.Fprintf(w, "\n%s", chart.Title)
		if chart.Selected != "" {
			fmt.Fprintf(w, " [selected: %s]", chart.Selected)
		}
		fmt.Fprintln(w)
		if chart.NoData {
			fmt.Fprintln(w, "  (no data)")
			continue
		}
		for _, series := range chart.Series {
			if len(chart.Series) > 1 {
				fmt.Fprintf(w, "  %s:\n", series.Name)
			}
			for _, p := range series.Data {
				fmt.Fprintf(w, "  %-20s %d\n", p.Label, int(p.Value))
			}
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
