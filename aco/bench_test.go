package aco_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/evacroute/aco"
	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/firefield"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// BenchmarkRun measures a full 50-iteration colony on a 40×40 floor with a
// growth-stage fire, for one worker and for GOMAXPROCS workers.
func BenchmarkRun(b *testing.B) {
	const n = 40
	bld, err := gridgraph.NewBuilding(open(n))
	if err != nil {
		b.Fatalf("setup NewBuilding failed: %v", err)
	}
	fire, err := firefield.Build(bld, []gridgraph.Cell{cell(n/2, n/2)}, 0, firefield.StageGrowth, firefield.DefaultOptions())
	if err != nil {
		b.Fatalf("setup firefield failed: %v", err)
	}
	f, err := costfield.Build(bld, fire, cell(0, 0), []gridgraph.Cell{cell(n-1, n-1)}, costfield.DefaultOptions())
	if err != nil {
		b.Fatalf("setup costfield failed: %v", err)
	}

	for _, bc := range []struct {
		name    string
		workers int
	}{{"Serial", 1}, {"Parallel", 0}} {
		b.Run(bc.name, func(b *testing.B) {
			opts := aco.DefaultOptions()
			opts.Workers = bc.workers
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := aco.Run(context.Background(), f, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
