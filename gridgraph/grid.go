package gridgraph

import "fmt"

// NewGrid allocates a height×width grid filled with Empty.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, height, width)
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later painting never aliases the caller's rows.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], rows[y])
	}
	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Validate reports whether g is usable: non-nil, non-empty and rectangular,
// with Width and Height matching Cells.
func (g *Grid) Validate() error {
	if g == nil || g.Width <= 0 || g.Height <= 0 || len(g.Cells) == 0 {
		return ErrEmptyGrid
	}
	if len(g.Cells) != g.Height {
		return ErrNonRectangular
	}
	for _, row := range g.Cells {
		if len(row) != g.Width {
			return ErrNonRectangular
		}
	}
	return nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// At returns the value stored at p, or ErrOutOfBounds.
func (g *Grid) At(p Point) (int, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	}
	return g.Cells[p.Y][p.X], nil
}

// Set writes v at p, or returns ErrOutOfBounds leaving g untouched.
func (g *Grid) Set(p Point, v int) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	}
	g.Cells[p.Y][p.X] = v
	return nil
}

// Neighbors4 appends to dst the in-bounds orthogonal neighbors of p in the
// order left, right, up, down, and returns the extended slice.
// Passing a reused dst[:0] keeps hot loops allocation-free.
// Complexity: O(1).
func (g *Grid) Neighbors4(dst []Point, p Point) []Point {
	for _, d := range offsets4 {
		q := p.Add(d)
		if g.Contains(q) {
			dst = append(dst, q)
		}
	}
	return dst
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]int, g.Height)
	for y := range cells {
		cells[y] = append([]int(nil), g.Cells[y]...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Rows returns a deep copy of the cell values as a plain [][]int.
func (g *Grid) Rows() [][]int {
	return g.Clone().Cells
}

// Count returns how many cells hold value v.
func (g *Grid) Count(v int) int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c == v {
				n++
			}
		}
	}
	return n
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
