// Package tables recovers tables from a page's drawn ruling lines.
//
// Detection is performed by types implementing the [Detector] interface,
// registered globally and retrieved by name:
//
//	detector := tables.GetDetector("rulings")
//	found, warnings, err := detector.Detect(page)
//
// # Ruling-based detection
//
// The [RulingsDetector] runs a multi-stage pipeline:
//
//  1. Ruling extraction — strictly vertical/horizontal line segments are
//     pulled from the page's drawn paths; thin filled bars (narrower than
//     a fraction of the page's mode glyph size) reduce to their
//     centerlines; every ruling is extended slightly at both ends.
//  2. Ruling merge — collinear rulings that overlap or touch collapse
//     into one spanning segment.
//  3. Intersection map — every horizontal/vertical ruling crossing is
//     recorded, keyed by its point.
//  4. Cell discovery — each crossing is tried as a cell's top-left
//     corner; a cell is emitted when the three remaining corners exist
//     and all four edges run along shared rulings.
//  5. Table grouping — cells whose corners coincide within a distance
//     threshold are grouped into candidate tables.
//
// # Configuration
//
// Detector behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MinCells = 4
//	detector.Configure(config)
package tables
