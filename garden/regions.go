package garden

// classifyEdges returns the status of all four edges of the plot at (x, y)
// inside a region of the given plant, against the current visited set:
//
//   - EdgeOutOfBounds if the neighbor falls outside the garden,
//   - EdgeOtherPlant if the neighbor holds a different label,
//   - EdgeVisited if the neighbor has the same label and is already absorbed,
//   - EdgeAvailable otherwise (a valid direction to continue the fill).
//
// Pure function of the garden, the visited set, and the coordinate.
// Complexity: O(1).
func (g *Garden) classifyEdges(x, y int, plant byte, seen []bool) [numOrientations]EdgeStatus {
	var edges [numOrientations]EdgeStatus
	for o := Up; o < numOrientations; o++ {
		dx, dy := o.offset()
		nx, ny := x+dx, y+dy
		switch {
		case !g.InBounds(nx, ny):
			edges[o] = EdgeOutOfBounds
		case g.plots[ny][nx] != plant:
			edges[o] = EdgeOtherPlant
		case seen[g.index(nx, ny)]:
			edges[o] = EdgeVisited
		default:
			edges[o] = EdgeAvailable
		}
	}

	return edges
}

// Regions partitions the garden into maximal 4-connected regions of equal
// plant labels. The scan is row-major; every cell belongs to exactly one
// region in the result, so region areas always sum to Width×Height.
//
// Time:   O(W×H) — the visited set is shared across the whole partition,
// so each cell is filled at most once regardless of region count.
// Memory: O(W×H) for visited flags and the collected plots.
func (g *Garden) Regions() []*Region {
	seen := make([]bool, g.Width*g.Height)
	var regions []*Region

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if seen[g.index(x, y)] {
				continue
			}
			regions = append(regions, g.fillRegion(x, y, seen))
		}
	}

	return regions
}

// fillRegion collects the region containing the seed (x, y) with an explicit
// work stack (no recursion, so deep regions cannot overflow the call stack).
// Each plot's edges are classified when the plot is popped; the edge used to
// descend into a neighbor is relabeled EdgeVisited so the finished region
// reflects the completed traversal. Only boundary labels (EdgeOutOfBounds,
// EdgeOtherPlant) feed pricing, and those are traversal-order independent.
func (g *Garden) fillRegion(x, y int, seen []bool) *Region {
	plant := g.plots[y][x]
	region := &Region{Plant: plant}

	stack := []Coord{{X: x, Y: y}}
	seen[g.index(x, y)] = true

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		plot := Plot{
			Coord: c,
			Plant: plant,
			Edges: g.classifyEdges(c.X, c.Y, plant, seen),
		}
		for o := Up; o < numOrientations; o++ {
			if plot.Edges[o] != EdgeAvailable {
				continue
			}
			dx, dy := o.offset()
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			seen[g.index(n.X, n.Y)] = true
			stack = append(stack, n)
			// Traversal descends through this edge; the neighbor's
			// reciprocal edge classifies as EdgeVisited on its own pop.
			plot.Edges[o] = EdgeVisited
		}
		region.Plots = append(region.Plots, plot)
	}

	return region
}
