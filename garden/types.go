// Package garden defines core types, enums, and sentinel errors
// for the garden subpackage of github.com/katalvlaran/gardengrid.
package garden

import (
	"errors"
)

// Sentinel errors for garden construction.
var (
	// ErrEmptyGarden indicates the input grid has no rows or no columns.
	ErrEmptyGarden = errors.New("garden: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("garden: all rows must have the same length")
)

// Orientation identifies one of a plot's four edges.
type Orientation int

const (
	// Up is the edge toward the row above (y-1).
	Up Orientation = iota
	// Down is the edge toward the row below (y+1).
	Down
	// Left is the edge toward the column to the left (x-1).
	Left
	// Right is the edge toward the column to the right (x+1).
	Right

	numOrientations = 4
)

// offset returns the unit step toward the neighbor across edge o.
func (o Orientation) offset() (dx, dy int) {
	switch o {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Orientation(?)"
	}
}

// EdgeStatus classifies what lies on the far side of a plot edge.
type EdgeStatus uint8

const (
	// EdgeOutOfBounds: the neighbor coordinate falls outside the garden.
	EdgeOutOfBounds EdgeStatus = iota
	// EdgeOtherPlant: the neighbor holds a different plant label.
	EdgeOtherPlant
	// EdgeAvailable: same plant, not yet absorbed by the fill.
	EdgeAvailable
	// EdgeVisited: same plant, already absorbed into the region.
	EdgeVisited
)

// Boundary reports whether the edge contributes fence: the far side is either
// outside the garden or a different plant.
func (s EdgeStatus) Boundary() bool {
	return s == EdgeOutOfBounds || s == EdgeOtherPlant
}

// Coord is a garden coordinate: X is the column, Y the row, origin top-left.
// Equality is by value.
type Coord struct {
	X, Y int
}

// Plot is one visited cell of a region: its coordinate, plant label, and the
// classification of its four edges captured during the fill. Edges is indexed
// by Orientation.
type Plot struct {
	Coord
	Plant byte
	Edges [numOrientations]EdgeStatus
}

// BoundaryEdges returns how many of the plot's edges contribute fence.
func (p *Plot) BoundaryEdges() int {
	n := 0
	for _, s := range p.Edges {
		if s.Boundary() {
			n++
		}
	}
	return n
}

// Pricing selects the fence pricing mode.
type Pricing int

const (
	// ByPerimeter prices a region as area × perimeter.
	ByPerimeter Pricing = iota
	// BySides prices a region as area × number of distinct straight sides.
	BySides
)
