package route_test

import (
	"fmt"

	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/route"
)

// ExampleSummarize post-processes an L-shaped path.
func ExampleSummarize() {
	p := []gridgraph.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	s, err := route.Summarize(p, route.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("length=%.1f turns=%d\n", s.Length, len(s.TurningPoints))
	for _, in := range s.Instructions {
		fmt.Println(in.Text)
	}
	// Output:
	// length=4.0 turns=1
	// Head east for 2.0 m
	// Turn right and continue south for 2.0 m
	// Arrive at the exit
}
