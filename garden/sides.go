package garden

import (
	"sort"
)

// side is one maximal straight run of boundary edges: an orientation, the
// perpendicular coordinate every edge in the run shares (X for Left/Right,
// Y for Up/Down), and the inclusive [start, end] range along the run.
type side struct {
	orientation Orientation
	line        int
	start, end  int
}

// overlaps reports whether two sides describe the same physical fence run:
// same orientation, same fence line, and intersecting ranges. Two runs on the
// same line separated by a gap never overlap and therefore count separately.
func (s side) overlaps(o side) bool {
	if s.orientation != o.orientation || s.line != o.line {
		return false
	}

	return s.start <= o.end && o.start <= s.end
}

// runKey buckets boundary edges that can belong to one straight run.
type runKey struct {
	orientation Orientation
	line        int
}

// splitCoord splits c into the fence-line coordinate and the position along
// the run for orientation o.
func splitCoord(o Orientation, c Coord) (line, along int) {
	if o == Left || o == Right {
		return c.X, c.Y
	}

	return c.Y, c.X
}

// extendRun returns the end of the consecutive run inside the sorted,
// duplicate-free coords that starts at from. from must be present in coords.
func extendRun(coords []int, from int) int {
	i := sort.SearchInts(coords, from)
	for i+1 < len(coords) && coords[i+1] == coords[i]+1 {
		i++
	}

	return coords[i]
}

// Sides returns the number of distinct straight fence runs bounding the
// region. A run of any length counts once; concave corners and the inner
// boundary of ring-shaped regions each start new runs, so a region with holes
// reports its outer and inner sides separately.
//
// Algorithm:
//  1. Bucket every boundary edge by (orientation, fence line) into sorted
//     run coordinates.
//  2. For each boundary edge, build a candidate side extending forward over
//     consecutive same-line boundary edges.
//  3. Keep a candidate only if no accepted side overlaps it, so every edge of
//     one physical run collapses into a single counted side.
//
// Complexity: O(n log n) for bucketing plus the linear dedup scan.
func (r *Region) Sides() int {
	if len(r.Plots) == 0 {
		return 0
	}

	// 1. Bucket boundary edges by (orientation, line).
	runs := make(map[runKey][]int)
	for i := range r.Plots {
		p := &r.Plots[i]
		for o := Up; o < numOrientations; o++ {
			if !p.Edges[o].Boundary() {
				continue
			}
			line, along := splitCoord(o, p.Coord)
			k := runKey{orientation: o, line: line}
			runs[k] = append(runs[k], along)
		}
	}
	for k := range runs {
		sort.Ints(runs[k])
	}

	// 2+3. Candidate per boundary edge, deduplicated by overlap.
	var sides []side
	for i := range r.Plots {
		p := &r.Plots[i]
		for o := Up; o < numOrientations; o++ {
			if !p.Edges[o].Boundary() {
				continue
			}
			line, along := splitCoord(o, p.Coord)
			cand := side{
				orientation: o,
				line:        line,
				start:       along,
				end:         extendRun(runs[runKey{orientation: o, line: line}], along),
			}
			exists := false
			for _, s := range sides {
				if s.overlaps(cand) {
					exists = true
					break
				}
			}
			if !exists {
				sides = append(sides, cand)
			}
		}
	}

	return len(sides)
}
