// Package shelterlens provides the cross-filter analytics core behind the
// animal-shelter operations dashboard.
//
// Usage:
//
//	import (
//	    "github.com/shelterlens-org/shelterlens/dataset"
//	    "github.com/shelterlens-org/shelterlens/engine"
//	)
//
//	table := dataset.Load("Animal-Shelter-Operations.csv")
//	sel := engine.NewSelection()
//	sel = engine.Apply(engine.ChartClick(engine.Species, "DOG"), sel)
//	frame := engine.BuildFrame(table, sel)
//
// The dataset is loaded once and shared read-only; every interaction derives
// a new Selection and recomputes the KPI panel plus the five charts, each
// chart ignoring its own dimension so it stays clickable. Rendering and UI
// event wiring live in the consuming application — the engine only returns
// render-ready frames.
package shelterlens
