package gridgraph

import "fmt"

// ComponentLabels labels the structurally connected regions of walkable
// cells on floor, following the same moves as Neighbors (so a diagonal gap
// between two walls does not connect regions). Every cell gets its
// component number, components numbered by their lowest index, or -1 for
// walls. count is the number of components.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for labels and the BFS queue.
func (b *Building) ComponentLabels(floor int) (labels []int, count int, err error) {
	if floor < 0 || floor >= b.floors {
		return nil, 0, fmt.Errorf("%w: floor %d of %d", ErrInvalidCoordinate, floor, b.floors)
	}
	total := b.rows * b.cols
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var (
		queue []int
		nbrs  []Neighbor
	)
	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !b.walkable(b.Coordinate(floor, i0)) {
			continue
		}
		// BFS to collect component
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := b.Coordinate(floor, queue[qi])
			nbrs = b.AppendNeighbors(nbrs[:0], u)
			for _, nb := range nbrs {
				vi := b.Index(nb.Cell.Row, nb.Cell.Col)
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}
	return labels, count, nil
}
