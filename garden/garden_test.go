package garden_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gardengrid/garden"
)

//----------------------------------------------------------------------------//
// New, FromLines, FromString and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]byte
		err  error
	}{
		{"NilRows", nil, garden.ErrEmptyGarden},
		{"EmptyRows", [][]byte{}, garden.ErrEmptyGarden},
		{"EmptyCols", [][]byte{{}}, garden.ErrEmptyGarden},
		{"NonRectangular", [][]byte{[]byte("AB"), []byte("A")}, garden.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := garden.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopies verifies that mutating the input after construction does
// not leak into the Garden.
func TestNew_DeepCopies(t *testing.T) {
	rows := [][]byte{[]byte("AB"), []byte("AB")}
	g, err := garden.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	rows[0][0] = 'Z'
	if got := g.At(0, 0); got != 'A' {
		t.Errorf("At(0,0) = %c after input mutation; want A", got)
	}
}

// TestFromString_TrimsAndSkips checks CR trimming and blank-line skipping, so
// raw file contents parse directly.
func TestFromString_TrimsAndSkips(t *testing.T) {
	g, err := garden.FromString("AB\r\nCD\r\n\n")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	if g.Width != 2 || g.Height != 2 {
		t.Fatalf("dimensions = %d×%d; want 2×2", g.Width, g.Height)
	}
	if got := g.At(1, 1); got != 'D' {
		t.Errorf("At(1,1) = %c; want D", got)
	}
}

// TestFromString_Ragged ensures parse-level validation still fails fast.
func TestFromString_Ragged(t *testing.T) {
	if _, err := garden.FromString("ABC\nAB"); !errors.Is(err, garden.ErrNonRectangular) {
		t.Errorf("ragged input: got %v; want ErrNonRectangular", err)
	}
	if _, err := garden.FromString("\n\n"); !errors.Is(err, garden.ErrEmptyGarden) {
		t.Errorf("blank input: got %v; want ErrEmptyGarden", err)
	}
}

// TestInBounds checks InBounds on a 3×2 garden.
func TestInBounds(t *testing.T) {
	g, err := garden.FromString("ABC\nDEF")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}
