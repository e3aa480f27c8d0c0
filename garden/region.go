package garden

import (
	"fmt"
)

// Region is a maximal 4-connected set of plots sharing one plant label,
// produced by Garden.Regions. Plots carry the edge classifications captured
// during the fill; a Region is never mutated after construction.
type Region struct {
	Plant byte
	Plots []Plot
}

// Area returns the number of plots in the region.
// Complexity: O(1).
func (r *Region) Area() int {
	return len(r.Plots)
}

// Perimeter returns the total count of boundary edges: edges facing either a
// different plant or the garden's exterior. An isolated single plot has
// perimeter 4.
// Complexity: O(n), n = region size.
func (r *Region) Perimeter() int {
	perimeter := 0
	for i := range r.Plots {
		perimeter += r.Plots[i].BoundaryEdges()
	}

	return perimeter
}

// Price returns the fence price of the region for the given pricing mode:
// Area×Perimeter for ByPerimeter, Area×Sides for BySides.
// An empty region prices at 0.
func (r *Region) Price(mode Pricing) int {
	if len(r.Plots) == 0 {
		return 0
	}
	if mode == BySides {
		return r.Area() * r.Sides()
	}

	return r.Area() * r.Perimeter()
}

// String summarizes the region for debugging.
func (r *Region) String() string {
	return fmt.Sprintf("Region(%c area=%d perimeter=%d sides=%d)",
		r.Plant, r.Area(), r.Perimeter(), r.Sides())
}
