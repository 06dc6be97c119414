// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestComponents_Simple4 tests Components on a 4×3 grid with orthogonal
// connectivity.
//
// Grid (1 = road, 0 = wilderness):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	comps := g.Components(1, Conn4)
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if comps[0][0] != (Point{X: 1, Y: 0}) {
		t.Errorf("first region starts at %v; want (1,0)", comps[0][0])
	}
}

// TestComponents_Diagonal8 uses Conn8 to catch regions touching at corners.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// Conn8 joins all 9 ones; Conn4 leaves them as 9 singletons.
func TestComponents_Diagonal8(t *testing.T) {
	g, _ := FromRows([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})

	if comps := g.Components(1, Conn8); len(comps) != 1 || len(comps[0]) != 9 {
		t.Errorf("Conn8: got %d components; want one of size 9", len(comps))
	}
	if comps := g.Components(1, Conn4); len(comps) != 9 {
		t.Errorf("Conn4: got %d components; want 9", len(comps))
	}
}

// TestComponents_ValueFilter checks only cells equal to the requested value
// are grouped, so a road (1) next to a river (2) stays separate.
func TestComponents_ValueFilter(t *testing.T) {
	g, _ := FromRows([][]int{
		{1, 1, 2},
		{0, 1, 2},
	})
	if comps := g.Components(2, Conn4); len(comps) != 1 || len(comps[0]) != 2 {
		t.Errorf("river: got %v; want one region of 2", comps)
	}
	if comps := g.Components(3, Conn4); len(comps) != 0 {
		t.Errorf("absent value: got %d regions; want 0", len(comps))
	}
	if comps := g.Components(Empty, Conn4); len(comps) != 1 || len(comps[0]) != 1 {
		t.Errorf("wilderness: got %v; want one single-cell region", comps)
	}
}
