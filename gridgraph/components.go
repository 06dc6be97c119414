package gridgraph

// Components finds all contiguous regions of cells whose value equals v,
// according to conn connectivity. Regions are reported in row-major order of
// their first cell; each region lists its cells in BFS discovery order.
//
// A freshly painted road or river should come back as exactly one region.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(v int, conn Connectivity) [][]Point {
	seen := make([]bool, g.Width*g.Height)
	offsets := offsets4[:]
	if conn == Conn8 {
		offsets = offsets8[:]
	}

	var comps [][]Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != v || seen[g.index(x, y)] {
				continue
			}
			seen[g.index(x, y)] = true
			queue := []Point{{X: x, Y: y}}

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					w := u.Add(d)
					if !g.Contains(w) || g.Cells[w.Y][w.X] != v {
						continue
					}
					if wi := g.index(w.X, w.Y); !seen[wi] {
						seen[wi] = true
						queue = append(queue, w)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
