// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

// TestComponentLabels_WallSplit tests ComponentLabels on a floor split by a
// full wall column.
//
// Grid (1 = wall):
//
//	0 0 1 0
//	0 0 1 0
//	0 0 1 0
//
// Expected: 2 regions of sizes 6 and 3.
func TestComponentLabels_WallSplit(t *testing.T) {
	b, err := NewBuilding([][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	})
	if err != nil {
		t.Fatalf("NewBuilding failed: %v", err)
	}

	labels, n, err := b.ComponentLabels(0)
	if err != nil {
		t.Fatalf("ComponentLabels failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("got %d components; want 2", n)
	}
	want := []int{
		0, 0, -1, 1,
		0, 0, -1, 1,
		0, 0, -1, 1,
	}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

// TestComponentLabels_DiagonalGap checks that two regions touching only
// through a diagonal gap between walls stay separate, since the move
// would cut a corner.
//
//	0 1
//	1 0
func TestComponentLabels_DiagonalGap(t *testing.T) {
	b, err := NewBuilding([][]int{
		{0, 1},
		{1, 0},
	})
	if err != nil {
		t.Fatalf("NewBuilding failed: %v", err)
	}
	labels, n, err := b.ComponentLabels(0)
	if err != nil {
		t.Fatalf("ComponentLabels failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("got %d components; want 2", n)
	}
	want := []int{0, -1, -1, 1}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

// TestComponentLabels_PerFloor labels each floor on its own.
func TestComponentLabels_PerFloor(t *testing.T) {
	b, err := NewBuilding(
		[][]int{{0, 1, 0}, {0, 1, 0}},
		[][]int{{0, 0, 0}, {0, 0, 0}},
	)
	if err != nil {
		t.Fatalf("NewBuilding failed: %v", err)
	}
	cases := []struct {
		floor int
		want  []int
		count int
	}{
		{0, []int{0, -1, 1, 0, -1, 1}, 2},
		{1, []int{0, 0, 0, 0, 0, 0}, 1},
	}
	for _, tc := range cases {
		labels, n, err := b.ComponentLabels(tc.floor)
		if err != nil {
			t.Fatalf("ComponentLabels(%d) error: %v", tc.floor, err)
		}
		if n != tc.count || !reflect.DeepEqual(labels, tc.want) {
			t.Errorf("ComponentLabels(%d) = %v, %d; want %v, %d", tc.floor, labels, n, tc.want, tc.count)
		}
	}
	if _, _, err := b.ComponentLabels(4); err == nil {
		t.Error("ComponentLabels(4) expected ErrInvalidCoordinate")
	}
}
