package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// ============================================================================
// NORMALIZER — CSV → Table
// ============================================================================
// Tolerant by design: headers are matched case/space-insensitively, unknown
// columns are skipped, malformed rows are dropped, malformed dates become
// null, and missing category cells become "Unknown". Loading never fails —
// an unavailable source yields the deterministic synthetic table instead,
// marked by Table.Source().
// ============================================================================

// Recognized column keys after snake-casing the header.
const (
	colSpecies     = "animal_type"
	colSpeciesAlt  = "species"
	colIntakeType  = "intake_type"
	colOutcomeType = "outcome_type"
	colIntakeDate  = "intake_date"
	colOutcomeDate = "outcome_date"
	colIsAlive     = "outcome_is_alive"
)

// Date layouts tried in order when parsing date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// Load reads the shelter CSV at path. When the file is missing or unreadable,
// or its header cannot be read, Load substitutes the deterministic synthetic
// table rather than returning an error — callers distinguish the two via
// Table.Synthetic().
func Load(path string, opts ...Option) *Table {
	cfg := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		log.Printf("🐾 dataset: %q unavailable (%v), using synthetic fallback", path, err)
		return Synthetic(cfg.SyntheticRows)
	}
	defer f.Close()

	t, err := Parse(f, path)
	if err != nil {
		log.Printf("🐾 dataset: %q unparseable (%v), using synthetic fallback", path, err)
		return Synthetic(cfg.SyntheticRows)
	}
	return t
}

// Parse reads CSV data from r into a Table with the given source marker.
// It fails only when the header row cannot be read; every row-level problem
// is recovered per-field.
func Parse(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	// Map column positions to the fields we care about. Unmapped columns
	// are silently skipped.
	idx := map[string]int{}
	for i, h := range headers {
		key := toSnakeCase(strings.TrimSpace(h))
		if key == colSpeciesAlt {
			key = colSpecies
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}

	cell := func(row []string, key string) (string, bool) {
		i, ok := idx[key]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		var rec Record
		s, _ := cell(row, colSpecies)
		rec.Species = normalizeCategory(s)
		s, _ = cell(row, colIntakeType)
		rec.IntakeType = normalizeCategory(s)
		s, _ = cell(row, colOutcomeType)
		rec.OutcomeType = normalizeCategory(s)

		if s, ok := cell(row, colIntakeDate); ok {
			rec.IntakeDate = parseDate(s)
		}
		if s, ok := cell(row, colOutcomeDate); ok {
			rec.OutcomeDate = parseDate(s)
		}

		liveKnown := false
		if s, ok := cell(row, colIsAlive); ok {
			if alive, parsed := parseBool(s); parsed {
				rec.LiveOutcome = alive
				liveKnown = true
			}
		}

		derive(&rec, liveKnown)
		records = append(records, rec)
	}

	return New(records, source), nil
}

// normalizeCategory trims a category cell and fills blanks with Unknown.
// "nan"/"None" show up in exports from dataframe tooling and count as blank.
func normalizeCategory(s string) string {
	switch s {
	case "", "nan", "NaN", "None":
		return Unknown
	}
	return s
}

// parseDate tries the known layouts; malformed values become the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseBool accepts the spellings the shelter exports use. The second return
// is false when the cell is not a recognizable boolean.
func parseBool(s string) (value, ok bool) {
	switch s {
	case "TRUE", "True", "true", "1":
		return true, true
	case "FALSE", "False", "false", "0":
		return false, true
	}
	return false, false
}

// toSnakeCase converts "Animal Type" → "animal_type".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
