package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/planner"
)

// ExamplePlanner_Plan plans across a floor whose middle wall has one gap.
func ExamplePlanner_Plan() {
	b, err := gridgraph.NewBuilding([][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	opts := planner.DefaultOptions()
	opts.VerifyWithAStar = true
	p, err := planner.New(b, opts, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	resp, err := p.Plan(context.Background(), planner.Request{
		Start: gridgraph.Cell{Row: 0, Col: 0},
		Exits: []gridgraph.Cell{{Row: 4, Col: 0}},
		Stage: "initial",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("length=%.2f cost=%.2f first=%v last=%v\n", resp.Length, resp.Cost, resp.Path[0], resp.Path[len(resp.Path)-1])
	// Output:
	// length=8.83 cost=8.83 first=[0 0] last=[4 0]
}
