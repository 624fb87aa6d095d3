package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// parseCell reads "floor,row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want floor,row,col", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
		}
		v[i] = n
	}
	return gridgraph.Cell{Floor: v[0], Row: v[1], Col: v[2]}, nil
}

func parseCells(in []string) ([]gridgraph.Cell, error) {
	out := make([]gridgraph.Cell, 0, len(in))
	for _, s := range in {
		c, err := parseCell(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
