// Package gridgraph models a rectangular terrain map as a 2D grid of integer
// cell values and treats it as an implicit graph of neighboring cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int (row = y, column = x) of terrain codes.
//     By convention 0 is empty wilderness; any other value is a painted
//     feature (road, river, trail, ...).
//   - Neighbors4 enumerates the orthogonal neighbors of a cell in a fixed
//     order: left, right, up, down. Path walkers rely on that order to break
//     ties reproducibly.
//   - Components finds contiguous regions of cells holding a given value,
//     under 4- or 8-connectivity.
//   - Render draws the grid as ASCII with axis labels and a legend.
//
// Why:
//
//   - Game maps: stamp roads and rivers, then check they form one feature.
//   - Debugging: a readable dump of a generated map in terminals and tests.
//
// Complexity:
//
//   - NewGrid, FromRows, Clone: O(W×H) time and memory.
//   - InBounds, At, Set, Neighbors4: O(1).
//   - Components: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - Render: O(W×H) time.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package gridgraph
