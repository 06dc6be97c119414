package gridgraph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Glyph is how one terrain value is drawn by Render.
type Glyph struct {
	Rune  rune
	Label string
}

// Legend maps terrain values to glyphs.
type Legend map[int]Glyph

// glyphFor resolves the rune for v: legend entry, then '.' for Empty,
// then the last decimal digit for small non-negative values, else '?'.
func (l Legend) glyphFor(v int) rune {
	if gl, ok := l[v]; ok && gl.Rune != 0 {
		return gl.Rune
	}
	switch {
	case v == Empty:
		return '.'
	case v > 0 && v < 10:
		return rune('0' + v)
	default:
		return '?'
	}
}

// Render draws g as ASCII: a column-index header, one labeled line per row
// (row = y) and a legend listing every value present on the map.
// Column headers show x mod 10 so wide maps stay aligned.
//
// Example (3×2, road value 1):
//
//	    0 1 2
//	0 | . = =
//	1 | . . =
//	Legend:
//	- .: 0
//	- =: 1 road
//
// Complexity: O(W×H) time.
func (g *Grid) Render(legend Legend) string {
	labelW := len(strconv.Itoa(g.Height - 1))
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", labelW+3))
	for x := 0; x < g.Width; x++ {
		if x > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x % 10))
	}
	b.WriteByte('\n')

	present := make(map[int]struct{})
	for y, row := range g.Cells {
		fmt.Fprintf(&b, "%*d | ", labelW, y)
		for x, v := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(legend.glyphFor(v))
			present[v] = struct{}{}
		}
		b.WriteByte('\n')
	}

	values := make([]int, 0, len(present))
	for v := range present {
		values = append(values, v)
	}
	sort.Ints(values)

	b.WriteString("Legend:")
	for _, v := range values {
		fmt.Fprintf(&b, "\n- %c: %d", legend.glyphFor(v), v)
		if label := legend[v].Label; label != "" {
			b.WriteString(" " + label)
		}
	}
	return b.String()
}
