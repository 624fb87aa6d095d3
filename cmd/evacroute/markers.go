package main

import (
	"fmt"

	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/planner"
)

// markerRequest fills req from the layout's start and exit markers.
// An explicit start is kept; its floor selects the floor searched for
// exits. Otherwise the first start marker of the lowest floor is used.
func markerRequest(b *gridgraph.Building, req *planner.Request, haveStart bool) error {
	if !haveStart {
		found := false
		for f := 0; f < b.Floors() && !found; f++ {
			starts, err := b.CellsWithCode(f, gridgraph.StartMarker)
			if err != nil {
				return err
			}
			if len(starts) > 0 {
				req.Start, found = starts[0], true
			}
		}
		if !found {
			return fmt.Errorf("layout has no start marker (%d)", gridgraph.StartMarker)
		}
	}
	if len(req.Exits) > 0 {
		return nil
	}
	exits, err := b.CellsWithCode(req.Start.Floor, gridgraph.ExitMarker)
	if err != nil {
		return err
	}
	if len(exits) == 0 {
		return fmt.Errorf("floor %d has no exit marker (%d)", req.Start.Floor, gridgraph.ExitMarker)
	}
	req.Exits = exits
	return nil
}
