// Package garden partitions a rectangular grid of plant labels into
// contiguous regions and prices the fencing around each one.
//
// What:
//
//   - Garden wraps a rectangular [][]byte grid of single-character plant labels.
//   - Regions identifies maximal 4-connected same-label regions, recording a
//     per-plot classification of all four edges along the way.
//   - Region reports Area, Perimeter, and Sides (the number of distinct
//     maximal straight fence runs, concave corners and holes included).
//   - TotalPrice sums area×perimeter or area×sides across all regions.
//
// Why:
//
//   - Land-use analysis: contiguous parcels and their fencing cost.
//   - Map tooling: region extraction with hole-aware side counting.
//
// Complexity:
//
//   - Regions:   O(W×H) time, O(W×H) memory (one visited flag per cell;
//     iterative fill, no recursion depth limits).
//   - Area/Perimeter: O(n) per region (n = region size).
//   - Sides:     O(n log n) per region (per-line bucketing + sorted runs).
//
// Pricing modes:
//
//   - ByPerimeter: price = area × perimeter.
//   - BySides:     price = area × number of distinct straight sides.
//
// Errors:
//
//   - ErrEmptyGarden: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package garden
